package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks calculator usage for the /metrics endpoint.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	failures     *prometheus.CounterVec
}

func newMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mathtools_calculations_total",
			Help: "Number of calculations served, by tool",
		}, []string{"tool"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mathtools_calculation_errors_total",
			Help: "Number of rejected calculation requests, by tool",
		}, []string{"tool"}),
	}

	m.registry.MustRegister(m.calculations, m.failures)
	return m
}

// RecordCalculation counts one served calculation.
func (m *Metrics) RecordCalculation(tool string) {
	m.calculations.WithLabelValues(tool).Inc()
}

// RecordFailure counts one rejected request.
func (m *Metrics) RecordFailure(tool string) {
	m.failures.WithLabelValues(tool).Inc()
}
