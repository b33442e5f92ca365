package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/cdg-go/cdg/cdg"
)

var _ cdg.Recorder = (*Metrics)(nil)

func TestRecordRequest(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordRequest(ctx, "GET", "bill/117/hr/3076", 200, 120*time.Millisecond)
	m.RecordRequest(ctx, "GET", "bill/118", 200, 80*time.Millisecond)
	m.RecordRequest(ctx, "GET", "member/L000174", 404, 10*time.Millisecond)
	m.RecordRequest(ctx, "GET", "congress", 0, time.Second)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var counter metricdata.Sum[int64]
	var hist metricdata.Histogram[float64]
	for _, mm := range rm.ScopeMetrics[0].Metrics {
		switch mm.Name {
		case "cdg.requests":
			counter = mm.Data.(metricdata.Sum[int64])
		case "cdg.request.duration_seconds":
			hist = mm.Data.(metricdata.Histogram[float64])
		}
	}

	counts := map[string]int64{}
	for _, dp := range counter.DataPoints {
		res, _ := dp.Attributes.Value(attribute.Key("resource"))
		class, _ := dp.Attributes.Value(attribute.Key("status_class"))
		counts[res.AsString()+"/"+class.AsString()] += dp.Value
	}
	assert.Equal(t, map[string]int64{
		"bill/2xx":       2,
		"member/4xx":     1,
		"congress/error": 1,
	}, counts)

	var total uint64
	for _, dp := range hist.DataPoints {
		total += dp.Count
	}
	assert.Equal(t, uint64(4), total)
}

func TestResource(t *testing.T) {
	tests := map[string]string{
		"bill/117/hr/3076":      "bill",
		"/committee-report/117": "committee-report",
		"congress":              "congress",
		"":                      "unknown",
	}
	for in, want := range tests {
		assert.Equal(t, want, Resource(in), in)
	}
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "error", statusClass(0))
	assert.Equal(t, "2xx", statusClass(204))
	assert.Equal(t, "3xx", statusClass(304))
	assert.Equal(t, "4xx", statusClass(429))
	assert.Equal(t, "5xx", statusClass(503))
}
