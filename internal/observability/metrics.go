package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds OTel metric instruments for checker runs.
type Metrics struct {
	LocalesChecked metric.Int64Counter
	KeysMismatched metric.Int64Counter
	RunDuration    metric.Float64Histogram
}

// NewMetrics creates the keycheck metric instruments on the global meter
// provider.
func NewMetrics() (*Metrics, error) {
	return NewMetricsFromMeter(otel.Meter(ServiceName))
}

// NewMetricsFromMeter creates the instruments on meter.
func NewMetricsFromMeter(meter metric.Meter) (*Metrics, error) {
	localesChecked, err := meter.Int64Counter("keycheck.locales.checked",
		metric.WithDescription("Number of locales compared against the reference"),
	)
	if err != nil {
		return nil, err
	}

	keysMismatched, err := meter.Int64Counter("keycheck.keys.mismatched",
		metric.WithDescription("Number of keys in the symmetric difference per locale"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram("keycheck.run.duration_seconds",
		metric.WithDescription("Wall time of a full check"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		LocalesChecked: localesChecked,
		KeysMismatched: keysMismatched,
		RunDuration:    runDuration,
	}, nil
}

// RecordLocale records one compared locale and its mismatched key count.
func (m *Metrics) RecordLocale(ctx context.Context, locale string, mismatched int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("locale", locale))
	m.LocalesChecked.Add(ctx, 1, attrs)
	if mismatched > 0 {
		m.KeysMismatched.Add(ctx, int64(mismatched), attrs)
	}
}

// RecordRun records the duration of a run and its outcome.
func (m *Metrics) RecordRun(ctx context.Context, d time.Duration, status string) {
	if m == nil {
		return
	}
	m.RunDuration.Record(ctx, d.Seconds(),
		metric.WithAttributes(attribute.String("status", status)),
	)
}
