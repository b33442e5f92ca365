package observability

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds OTel metric instruments for congress.gov requests. It
// satisfies cdg.Recorder.
type Metrics struct {
	Requests        metric.Int64Counter
	RequestDuration metric.Float64Histogram
}

// NewMetrics creates the request instruments on mp, or on the global
// provider when mp is nil.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter("github.com/cdg-go/cdg")

	requests, err := meter.Int64Counter("cdg.requests",
		metric.WithDescription("Number of congress.gov requests by endpoint and status class"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("cdg.request.duration_seconds",
		metric.WithDescription("Round trip time of congress.gov requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		Requests:        requests,
		RequestDuration: duration,
	}, nil
}

// RecordRequest records one round trip. Status 0 means a transport failure.
func (m *Metrics) RecordRequest(ctx context.Context, method, endpoint string, status int, d time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("resource", Resource(endpoint)),
		attribute.String("status_class", statusClass(status)),
	)
	m.Requests.Add(ctx, 1, attrs)
	m.RequestDuration.Record(ctx, d.Seconds(), attrs)
}

// Resource returns the first path segment of an endpoint, keeping metric
// cardinality bounded: "bill/117/hr/3076" is "bill".
func Resource(endpoint string) string {
	head, _, _ := strings.Cut(strings.TrimPrefix(endpoint, "/"), "/")
	if head == "" {
		return "unknown"
	}
	return head
}

func statusClass(status int) string {
	switch {
	case status == 0:
		return "error"
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
