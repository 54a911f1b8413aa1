// Package metrics holds the prometheus collectors for record operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeNoop     = "noop"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	records    prometheus.Gauge
	latency    *prometheus.HistogramVec
	http       *prometheus.CounterVec
	httpTime   *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry so several instances can
// live in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{Name: "employee_records_operations_total", Help: "Record operations by kind and outcome."},
			[]string{"op", "outcome"},
		),
		records: factory.NewGauge(
			prometheus.GaugeOpts{Name: "employee_records_total", Help: "Records in the stored collection after the last load or save."},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{Name: "employee_records_operation_seconds", Help: "Latency of record operations in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"op"},
		),
		http: factory.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by method, route and status."},
			[]string{"method", "route", "status"},
		),
		httpTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"method", "route"},
		),
	}
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Observe(op, outcome string, started time.Time) {
	m.operations.WithLabelValues(op, outcome).Inc()
	m.latency.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	m.http.WithLabelValues(method, route, status).Inc()
	m.httpTime.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) SetRecords(n int) {
	m.records.Set(float64(n))
}

func (m *Metrics) Operations() *prometheus.CounterVec   { return m.operations }
func (m *Metrics) Records() prometheus.Gauge            { return m.records }
func (m *Metrics) HTTPRequests() *prometheus.CounterVec { return m.http }
