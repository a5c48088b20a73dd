package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"icao24"
)

const usage = `
Usage:

curl "http://localhost:12960/country/395d66"

Also you can pass several addresses that you need to check:

curl "http://localhost:12960/country/395d66,a835af,51d8ca"

Full classification (country, reserved block, validity):

curl "http://localhost:12960/classify/395d66,51d8ca"

`

type Server struct {
	config     *Config
	classifier *icao24.Classifier
	metrics    *Metrics
}

func NewServer(config *Config, classifier *icao24.Classifier, metrics *Metrics) *Server {
	return &Server{
		config:     config,
		classifier: classifier,
		metrics:    metrics,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.usage)
	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	r.GET("/country/:addresses", s.resolveCountry)
	r.GET("/classify/:addresses", s.classify)

	return r
}

func (s *Server) Run() error {
	gin.SetMode(gin.ReleaseMode)

	logrus.Infof("starting the HTTP server on %s", s.config.Listen)
	return s.Router().Run(s.config.Listen)
}

func (s *Server) usage(c *gin.Context) {
	c.String(http.StatusOK, usage)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) resolveCountry(c *gin.Context) {
	results, ok := s.lookup(c)
	if !ok {
		return
	}

	out := make(map[string]string, len(results))
	for address, r := range results {
		if r.Country == "" {
			continue
		}
		out[address] = r.Country
	}

	c.JSON(http.StatusOK, out)
}

func (s *Server) classify(c *gin.Context) {
	results, ok := s.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, results)
}

// lookup classifies every address of the request. It answers the request
// itself and returns false on malformed input.
func (s *Server) lookup(c *gin.Context) (map[string]icao24.Classification, bool) {
	addresses, err := parseAddresses(c.Param("addresses"), s.config.MaxAddressesPerRequest)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return nil, false
	}

	out := make(map[string]icao24.Classification, len(addresses))
	for _, address := range addresses {
		r, err := s.classifier.Classify(address)
		if err != nil {
			s.metrics.ObserveMalformed()
			logrus.Debugf("rejected address %q: %v", address, err)
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return nil, false
		}
		s.metrics.Observe(r)
		out[address] = r
	}

	return out, true
}

func parseAddresses(addresses string, limit int) ([]string, error) {
	if addresses == "" {
		return nil, errors.New("empty address string passed")
	}

	parts := strings.Split(addresses, ",")
	if len(parts) > limit {
		return nil, errors.New("limit of addresses in one request reached")
	}

	out := make([]string, 0, len(parts))
	for _, address := range parts {
		address = strings.TrimSpace(address)
		if address == "" {
			continue
		}
		out = append(out, address)
	}

	if len(out) == 0 {
		return nil, errors.New("has no addresses to check")
	}

	return out, nil
}
