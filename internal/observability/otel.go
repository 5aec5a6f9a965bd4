package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// ServiceName identifies keycheck in telemetry.
const ServiceName = "keycheck"

// RunInfo describes the checked catalog; it is attached to every exported
// span and metric as resource attributes.
type RunInfo struct {
	Root      string
	Reference string
	Locales   []string
}

// InitTelemetry installs global trace and meter providers exporting over
// OTLP HTTP. Both exporters read the standard OTEL_EXPORTER_OTLP_*
// variables. The returned shutdown flushes both and should be deferred.
func InitTelemetry(ctx context.Context, info RunInfo) (func(context.Context) error, error) {
	res, err := newResource(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("otel: create resource: %w", err)
	}

	traceExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otel: create trace exporter: %w", err)
	}
	metricExporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otel: create metric exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	// A check finishes in well under the default interval, so collection
	// happens on shutdown.
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	slog.Info("OpenTelemetry initialized", "service", ServiceName, "root", info.Root)
	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}

// newResource leaves the schema URL to the SDK detector so it cannot conflict
// with the pinned semconv version.
func newResource(ctx context.Context, info RunInfo) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			attribute.String("keycheck.root", info.Root),
			attribute.String("keycheck.reference", info.Reference),
			attribute.StringSlice("keycheck.locales", info.Locales),
		),
	)
}

// Tracer returns the keycheck tracer from the global provider. Without
// InitTelemetry the global provider is a no-op.
func Tracer() trace.Tracer {
	return otel.Tracer(ServiceName)
}
