// Package dispatch posts notification payloads to configured callback
// endpoints and aggregates per-endpoint outcomes.
package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hokumski/profilecallback/endpoint"
	"github.com/hokumski/profilecallback/observability"
)

// EmptyResponse is substituted when an endpoint answers with an empty body.
const EmptyResponse = "[empty response]"

// Status classifies the outcome of a single delivery attempt.
type Status string

// Delivery outcome statuses.
const (
	StatusDelivered   Status = "delivered"
	StatusUnknownHost Status = "unknown_host"
	StatusTimeout     Status = "timeout"
	StatusError       Status = "error"
)

// Result is the outcome of one delivery attempt to one endpoint.
type Result struct {
	URL        string
	Status     Status
	StatusCode int
	Body       string
	Err        error
	Latency    time.Duration
}

// Line renders the result as one outcome line, without trailing newline.
// A successful delivery contributes the response body text; failures
// contribute a categorized message with the endpoint URL.
func (r Result) Line() string {
	switch r.Status {
	case StatusDelivered:
		return r.Body
	case StatusUnknownHost:
		return "unknown host: " + r.URL
	case StatusTimeout:
		return "connection timeout for: " + r.URL
	default:
		return "unknown error for: " + r.URL
	}
}

// Dispatcher delivers payloads to callback endpoints strictly in
// configured order, one attempt per endpoint per event.
type Dispatcher struct {
	logger  *slog.Logger
	metrics *observability.Metrics
	tracer  *observability.Tracer
}

// New creates a dispatcher. Metrics and tracer are optional.
func New(logger *slog.Logger, metrics *observability.Metrics, tracer *observability.Tracer) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger, metrics: metrics, tracer: tracer}
}

// Dispatch posts the payload to every endpoint in order and returns the
// concatenated outcome text, one line per endpoint. A failure on one
// endpoint never aborts delivery to the rest, and no endpoint is skipped.
func (d *Dispatcher) Dispatch(ctx context.Context, endpoints []endpoint.Endpoint, payload string) string {
	var sb strings.Builder
	for _, ep := range endpoints {
		res := d.send(ctx, ep, payload)
		sb.WriteString(res.Line())
		sb.WriteByte('\n')

		if res.Status != StatusDelivered {
			d.logger.ErrorContext(ctx, "callback failed",
				"url", ep.URL,
				"status", res.Status,
				"error", res.Err,
			)
		}
		if d.metrics != nil {
			d.metrics.RecordDelivery(string(res.Status), res.Latency.Seconds())
		}
	}
	return sb.String()
}

// send performs one delivery attempt with a freshly scoped transport, so
// no connections are shared across endpoints or invocations.
func (d *Dispatcher) send(ctx context.Context, ep endpoint.Endpoint, payload string) Result {
	d.logger.DebugContext(ctx, "callback", "url", ep.URL)

	if d.tracer == nil {
		return d.post(ctx, ep, payload)
	}

	ctx, span := d.tracer.StartDeliverySpan(ctx, ep.URL)
	res := d.post(ctx, ep, payload)
	d.tracer.EndDeliverySpan(span, string(res.Status), res.StatusCode, res.Latency)
	return res
}

func (d *Dispatcher) post(ctx context.Context, ep endpoint.Endpoint, payload string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.URL, strings.NewReader(payload))
	if err != nil {
		return Result{URL: ep.URL, Status: StatusError, Err: err}
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if ep.AuthHeaderName != "" {
		req.Header.Set(ep.AuthHeaderName, ep.AuthHeaderValue)
	}

	transport := &http.Transport{}
	defer transport.CloseIdleConnections()
	client := &http.Client{
		Transport: transport,
		// Covers connection establishment and response read alike.
		Timeout: ep.Timeout,
	}

	start := time.Now()
	resp, err := client.Do(req)
	latency := time.Since(start)
	if err != nil {
		return Result{URL: ep.URL, Status: classify(err), Err: err, Latency: latency}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{URL: ep.URL, Status: classify(err), StatusCode: resp.StatusCode, Err: err, Latency: latency}
	}

	text := string(body)
	if text == "" {
		text = EmptyResponse
	}
	return Result{URL: ep.URL, Status: StatusDelivered, StatusCode: resp.StatusCode, Body: text, Latency: latency}
}

// classify maps a transport error onto the outcome taxonomy: unknown
// host, connection/read timeout, or other.
func classify(err error) Status {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return StatusUnknownHost
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return StatusTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return StatusTimeout
	}
	return StatusError
}
