package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"icao24"
)

const metricsNamespace = "icao24"

const (
	resultCountry     = "country"
	resultReserved    = "reserved"
	resultUnallocated = "unallocated"
	resultMalformed   = "malformed"
)

// Metrics counts lookups by outcome on a registry owned by one server.
type Metrics struct {
	registry *prometheus.Registry
	lookups  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "lookups_total",
				Help:      "Total number of address lookups by result",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(m.lookups)

	return m
}

// Observe counts one classified address. An address both allocated and
// reserved counts as country.
func (m *Metrics) Observe(c icao24.Classification) {
	switch {
	case c.Country != "":
		m.lookups.WithLabelValues(resultCountry).Inc()
	case c.Reserved:
		m.lookups.WithLabelValues(resultReserved).Inc()
	default:
		m.lookups.WithLabelValues(resultUnallocated).Inc()
	}
}

func (m *Metrics) ObserveMalformed() {
	m.lookups.WithLabelValues(resultMalformed).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
