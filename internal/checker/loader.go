package checker

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/finops-claw-gang/keycheck/internal/domain"
	"github.com/finops-claw-gang/keycheck/internal/parser"
)

// load parses every resource with at most cfg.Workers files in flight.
// Documents are returned in resource order. Every malformed document is
// reported, joined in resource order.
func (c *Checker) load(ctx context.Context, resources []domain.Resource) ([]domain.LocaleDocument, error) {
	ctx, span := c.tracer.Start(ctx, "keycheck.load")
	defer span.End()
	span.SetAttributes(attribute.Int("documents", len(resources)))

	docs := make([]domain.LocaleDocument, len(resources))
	errs := make([]error, len(resources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Workers)
	for i, r := range resources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docs[i], errs[i] = parser.ParseFile(r.Locale, r.Path)
			if errs[i] == nil {
				c.logger.Debug("loaded document", "locale", r.Locale, "path", r.Path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("checker: load: %w", err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return docs, nil
}
