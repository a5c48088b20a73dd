package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"

	"github.com/sirupsen/logrus"

	"icao24"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "path to the YAML config")
	flag.Parse()

	logrus.SetLevel(logrus.InfoLevel)
	conf, err := ParseConfig(*configPath)
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.SetLevel(logrus.Level(conf.LogLevel))
	if conf.PprofListen != "" {
		go func() {
			//for pprof
			if err := http.ListenAndServe(conf.PprofListen, nil); err != nil {
				logrus.Warnf("pprof listener stopped: %v", err)
			}
		}()
	}

	server := NewServer(conf, icao24.Default(), NewMetrics())
	if err := server.Run(); err != nil {
		logrus.Fatal(err)
	}
}
