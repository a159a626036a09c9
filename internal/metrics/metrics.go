// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	Registry *prometheus.Registry

	StoreRequests *prometheus.CounterVec
	StoreDuration *prometheus.HistogramVec
	GateAttempts  *prometheus.CounterVec
	CacheRefresh  *prometheus.CounterVec
	EventsPublish *prometheus.CounterVec
}

// New creates the collectors on a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		StoreRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kakeibo_store_requests_total",
				Help: "Total number of remote store requests",
			},
			[]string{"table", "operation", "outcome"},
		),
		StoreDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kakeibo_store_request_duration_seconds",
				Help:    "Remote store request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"table", "operation"},
		),
		GateAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kakeibo_gate_attempts_total",
				Help: "Total number of completed passcode attempts",
			},
			[]string{"outcome"},
		),
		CacheRefresh: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kakeibo_cache_refresh_total",
				Help: "Total number of expense cache refreshes",
			},
			[]string{"outcome"},
		),
		EventsPublish: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kakeibo_events_published_total",
				Help: "Total number of change events published",
			},
			[]string{"type", "outcome"},
		),
	}
}

// ObserveStore records one store request.
func (m *Metrics) ObserveStore(table, operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.StoreRequests.WithLabelValues(table, operation, outcome(err)).Inc()
	m.StoreDuration.WithLabelValues(table, operation).Observe(time.Since(start).Seconds())
}

// RecordGateAttempt records a completed four-digit attempt.
func (m *Metrics) RecordGateAttempt(unlocked bool) {
	if m == nil {
		return
	}
	result := "rejected"
	if unlocked {
		result = "unlocked"
	}
	m.GateAttempts.WithLabelValues(result).Inc()
}

// RecordCacheRefresh records a cache refresh from the store.
func (m *Metrics) RecordCacheRefresh(err error) {
	if m == nil {
		return
	}
	m.CacheRefresh.WithLabelValues(outcome(err)).Inc()
}

// RecordPublish records a change event publication.
func (m *Metrics) RecordPublish(eventType string, err error) {
	if m == nil {
		return
	}
	m.EventsPublish.WithLabelValues(eventType, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
