// Package checker runs the key consistency pipeline: locate every locale
// document, load and flatten it, then compare each locale with the
// reference.
package checker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/finops-claw-gang/keycheck/internal/compare"
	"github.com/finops-claw-gang/keycheck/internal/config"
	"github.com/finops-claw-gang/keycheck/internal/domain"
	"github.com/finops-claw-gang/keycheck/internal/keyset"
	"github.com/finops-claw-gang/keycheck/internal/locator"
	"github.com/finops-claw-gang/keycheck/internal/observability"
)

// Checker compares the configured locales against the reference locale.
type Checker struct {
	cfg     config.Config
	ignore  *keyset.Matcher
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *observability.Metrics
}

// Option customizes a Checker.
type Option func(*Checker)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option { return func(c *Checker) { c.logger = l } }

// WithTracer sets the tracer. Defaults to observability.Tracer().
func WithTracer(t trace.Tracer) Option { return func(c *Checker) { c.tracer = t } }

// WithMetrics sets the metric instruments. Nil disables metrics.
func WithMetrics(m *observability.Metrics) Option { return func(c *Checker) { c.metrics = m } }

// New validates cfg and returns a Checker for it.
func New(cfg config.Config, opts ...Option) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ignore, err := keyset.NewMatcher(cfg.Ignore)
	if err != nil {
		return nil, fmt.Errorf("checker: %w", err)
	}
	c := &Checker{
		cfg:    cfg,
		ignore: ignore,
		logger: slog.Default(),
		tracer: observability.Tracer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Run executes one check. A non-nil result is returned whenever the
// comparison ran; in that case the error is nil on a pass or a
// *domain.KeyMismatchError on a mismatch. Missing files, malformed
// documents and an absent reference return a nil result and the
// corresponding domain error.
func (c *Checker) Run(ctx context.Context) (*domain.ComparisonResult, error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "keycheck.run", trace.WithAttributes(
		attribute.String("reference", c.cfg.Reference),
		attribute.StringSlice("locales", c.cfg.Locales),
	))
	defer span.End()

	result, err := c.run(ctx)

	status := domain.StatusOf(err)
	span.SetAttributes(attribute.String("status", string(status)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	c.metrics.RecordRun(ctx, time.Since(start), string(status))
	return result, err
}

func (c *Checker) run(ctx context.Context) (*domain.ComparisonResult, error) {
	resources, err := c.locate(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := c.load(ctx, resources)
	if err != nil {
		return nil, err
	}

	flattened := c.flatten(docs)

	_, span := c.tracer.Start(ctx, "keycheck.compare")
	result, err := compare.Compare(c.cfg.Reference, flattened)
	span.End()
	if err != nil {
		return nil, err
	}

	c.record(ctx, result)
	return result, result.Err()
}

func (c *Checker) locate(ctx context.Context) ([]domain.Resource, error) {
	_, span := c.tracer.Start(ctx, "keycheck.locate")
	defer span.End()

	resources, err := locator.Locate(c.cfg.Layout(), c.cfg.Locales)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("located translation files", "count", len(resources), "root", c.cfg.RootDir)
	return resources, nil
}

func (c *Checker) flatten(docs []domain.LocaleDocument) []compare.Flattened {
	out := make([]compare.Flattened, len(docs))
	for i, doc := range docs {
		for _, path := range keyset.Collisions(doc.Data) {
			c.logger.Warn("ambiguous key path: a key contains the separator",
				"locale", doc.Locale, "path", doc.Path, "key", path)
		}
		keys := c.ignore.Exclude(keyset.Flatten(doc.Data))
		c.logger.Debug("flattened document", "locale", doc.Locale, "keys", keys.Len())
		out[i] = compare.Flattened{Resource: doc.Resource(), Keys: keys}
	}
	return out
}

func (c *Checker) record(ctx context.Context, result *domain.ComparisonResult) {
	mismatched := make(map[string]domain.LocaleDiff, len(result.Mismatches))
	for _, m := range result.Mismatches {
		mismatched[m.Locale] = m
	}
	for _, locale := range result.Checked {
		diff, bad := mismatched[locale]
		c.metrics.RecordLocale(ctx, locale, len(diff.Difference))
		if bad {
			c.logger.Warn("keys mismatch", "reference", result.Reference.Locale, "locale", locale,
				"missing", len(diff.Missing), "extra", len(diff.Extra))
		}
	}
	if result.Passed() {
		c.logger.Info("all locales match reference", "reference", result.Reference.Locale, "checked", len(result.Checked))
	}
}
