package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "icao24d")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfigShipped(t *testing.T) {
	conf, err := ParseConfig("./config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), conf)
}

func TestParseConfigDefaults(t *testing.T) {
	conf, err := ParseConfig(writeConfig(t, "listen: \":8080\"\n"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", conf.Listen)
	assert.Equal(t, defaultPprofListen, conf.PprofListen)
	assert.Equal(t, uint32(logrus.InfoLevel), conf.LogLevel)
	assert.Equal(t, defaultMaxAddressesPerRequest, conf.MaxAddressesPerRequest)
}

func TestParseConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "listn: \":8080\"\n",
		"empty listen":   "listen: \"\"\n",
		"zero limit":     "max_addresses_per_request: 0\n",
		"bad log level":  "log_level: 9\n",
		"malformed yaml": "listen: [\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig(writeConfig(t, content))
			assert.Error(t, err)
		})
	}

	_, err := ParseConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}
