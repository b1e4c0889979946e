// Package metrics exposes prometheus counters for form intake volume.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the registry and the counters handlers increment.
type Metrics struct {
	registry *prometheus.Registry

	// Submissions counts accepted form submissions by entity kind.
	Submissions *prometheus.CounterVec
	// Unsubscribes counts successful newsletter unsubscribes.
	Unsubscribes prometheus.Counter
}

// New builds a Metrics instance with its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: reg,
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hopeworks_submissions_total",
			Help: "Accepted form submissions by entity kind.",
		}, []string{"kind"}),
		Unsubscribes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hopeworks_newsletter_unsubscribes_total",
			Help: "Successful newsletter unsubscribe requests.",
		}),
	}
	reg.MustRegister(m.Submissions, m.Unsubscribes)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
