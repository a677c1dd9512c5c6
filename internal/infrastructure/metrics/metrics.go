// Package metrics owns the Prometheus registry and the collectors the
// service reports into.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collaborator call outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
)

// Metrics groups the service collectors. A nil *Metrics is a no-op.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	CollaboratorCalls  *prometheus.CounterVec
	CollaboratorTiming *prometheus.HistogramVec
	StoreWrites        *prometheus.CounterVec
}

// New creates and registers all collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		CollaboratorCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hydrotrack_collaborator_calls_total",
				Help: "Calls to the generative collaborator by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		CollaboratorTiming: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hydrotrack_collaborator_call_seconds",
				Help:    "Generative collaborator latency in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"kind"},
		),
		StoreWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hydrotrack_store_writes_total",
				Help: "Collection replacements by key and result",
			},
			[]string{"key", "result"},
		),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.CollaboratorCalls,
		m.CollaboratorTiming,
		m.StoreWrites,
	)

	return m
}

// ObserveCollaborator records one collaborator call.
func (m *Metrics) ObserveCollaborator(kind, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.CollaboratorCalls.WithLabelValues(kind, outcome).Inc()
	m.CollaboratorTiming.WithLabelValues(kind).Observe(seconds)
}

// ObserveStoreWrite records one collection write.
func (m *Metrics) ObserveStoreWrite(key string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StoreWrites.WithLabelValues(key, result).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
