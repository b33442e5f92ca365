package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func serviceResource(serviceName, version string) *resource.Resource {
	return resource.NewSchemaless(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version),
	)
}

// InitTracer installs a global tracer provider exporting over OTLP/HTTP
// (endpoint from the standard OTEL_EXPORTER_OTLP_* variables) and a W3C
// trace-context propagator, so instrumented congress.gov requests carry
// traceparent. The returned function flushes and stops the exporter.
func InitTracer(ctx context.Context, serviceName, version string) (func(context.Context) error, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otel: create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(serviceResource(serviceName, version)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	slog.Info("tracing initialized", "service", serviceName, "version", version)
	return tp.Shutdown, nil
}

// InitMeter installs a global meter provider that pushes to the OTLP/HTTP
// metrics endpoint on a periodic reader. Shut the provider down to flush
// the last interval.
func InitMeter(ctx context.Context, serviceName, version string) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otel: create metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(serviceResource(serviceName, version)),
	)
	otel.SetMeterProvider(mp)

	slog.Info("metrics initialized", "service", serviceName, "version", version)
	return mp, nil
}

// InitTelemetry starts tracing and metrics for a binary and returns request
// instruments bound to the new meter provider. The shutdown function flushes
// both providers.
func InitTelemetry(ctx context.Context, serviceName, version string) (*Metrics, func(context.Context) error, error) {
	stopTracer, err := InitTracer(ctx, serviceName, version)
	if err != nil {
		return nil, nil, err
	}
	mp, err := InitMeter(ctx, serviceName, version)
	if err != nil {
		_ = stopTracer(ctx)
		return nil, nil, err
	}

	shutdown := func(ctx context.Context) error {
		return errors.Join(mp.Shutdown(ctx), stopTracer(ctx))
	}

	metrics, err := NewMetrics(mp)
	if err != nil {
		_ = shutdown(ctx)
		return nil, nil, err
	}
	return metrics, shutdown, nil
}
