// Package observability provides optional Prometheus metrics and
// OpenTelemetry tracing for the listener.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the metric instruments recorded by the listener.
type Metrics struct {
	// EventsHandled counts lifecycle events that produced a callback
	// payload, by event kind.
	EventsHandled *prometheus.CounterVec

	// Deliveries counts callback delivery attempts by outcome status.
	Deliveries *prometheus.CounterVec

	// DeliveryDuration records callback delivery latency in seconds.
	DeliveryDuration prometheus.Histogram
}

// NewMetrics creates the listener instruments and registers them on reg.
// A nil reg creates unregistered instruments, which is what tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsHandled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "profilecallback_events_handled_total",
			Help: "Lifecycle events that produced a callback payload.",
		}, []string{"kind"}),
		Deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "profilecallback_deliveries_total",
			Help: "Callback delivery attempts by outcome status.",
		}, []string{"status"}),
		DeliveryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "profilecallback_delivery_duration_seconds",
			Help:    "Callback delivery latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.EventsHandled, m.Deliveries, m.DeliveryDuration)
	}
	return m
}

// RecordEvent records one handled lifecycle event.
func (m *Metrics) RecordEvent(kind string) {
	m.EventsHandled.WithLabelValues(kind).Inc()
}

// RecordDelivery records one delivery attempt with its outcome and latency.
func (m *Metrics) RecordDelivery(status string, seconds float64) {
	m.Deliveries.WithLabelValues(status).Inc()
	m.DeliveryDuration.Observe(seconds)
}
