package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/hokumski/profilecallback"

// Tracer provides OpenTelemetry tracing for callback deliveries.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a listener tracer on the global tracer provider.
func NewTracer() *Tracer {
	return &Tracer{
		tracer: otel.Tracer(tracerName),
	}
}

// StartDeliverySpan starts a span for one callback delivery attempt.
func (t *Tracer) StartDeliverySpan(ctx context.Context, url string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "profilecallback.delivery",
		trace.WithAttributes(
			attribute.String("callback.url", url),
		),
	)
}

// EndDeliverySpan ends a delivery span with outcome attributes.
func (t *Tracer) EndDeliverySpan(span trace.Span, status string, statusCode int, latency time.Duration) {
	span.SetAttributes(
		attribute.String("callback.status", status),
		attribute.Int("http.status_code", statusCode),
		attribute.Int64("callback.latency_ms", latency.Milliseconds()),
	)
	span.End()
}
