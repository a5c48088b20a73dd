package main

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	defaultListen                 = "localhost:12960"
	defaultPprofListen            = "localhost:12961"
	defaultMaxAddressesPerRequest = 100
)

type Config struct {
	Listen                 string `yaml:"listen"`
	PprofListen            string `yaml:"pprof_listen"`
	LogLevel               uint32 `yaml:"log_level"`
	MaxAddressesPerRequest int    `yaml:"max_addresses_per_request"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:                 defaultListen,
		PprofListen:            defaultPprofListen,
		LogLevel:               uint32(logrus.InfoLevel),
		MaxAddressesPerRequest: defaultMaxAddressesPerRequest,
	}
}

func ParseConfig(path string) (*Config, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config %s", path)
	}

	conf := DefaultConfig()
	if err := yaml.UnmarshalStrict(content, conf); err != nil {
		return nil, errors.Wrapf(err, "unable to parse config %s", path)
	}
	if conf.Listen == "" {
		return nil, errors.New("listen address is empty")
	}
	if conf.MaxAddressesPerRequest <= 0 {
		return nil, errors.Errorf("max_addresses_per_request must be positive, got %d", conf.MaxAddressesPerRequest)
	}
	if conf.LogLevel > uint32(logrus.TraceLevel) {
		return nil, errors.Errorf("unknown log level %d", conf.LogLevel)
	}

	return conf, nil
}
