package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Allocation outcome counters, labeled by result kind:
	// kept, added, moved, skipped.
	AllocationsTotal  *prometheus.CounterVec
	AppointmentsGauge prometheus.Gauge
}

// New registers and returns the service metrics on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		AllocationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduler_allocations_total",
			Help:        "Allocator pairing outcomes by result kind",
			ConstLabels: constLabels,
		}, []string{"result"}),

		AppointmentsGauge: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "scheduler_appointments",
			Help:        "Current number of stored appointments",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveAllocation records the outcome counts of one allocator run.
func (m *Metrics) ObserveAllocation(kept, added, moved, skipped int) {
	m.AllocationsTotal.WithLabelValues("kept").Add(float64(kept))
	m.AllocationsTotal.WithLabelValues("added").Add(float64(added))
	m.AllocationsTotal.WithLabelValues("moved").Add(float64(moved))
	m.AllocationsTotal.WithLabelValues("skipped").Add(float64(skipped))
}
