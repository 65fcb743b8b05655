package imagery

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/observability/metrics"
)

// Resolver runs providers in order and falls back to the static asset.
type Resolver struct {
	logger    *zap.Logger
	providers []Provider
	fallback  *StaticProvider
}

func NewResolver(logger *zap.Logger, fallback *StaticProvider, providers ...Provider) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fallback == nil {
		fallback = NewStaticProvider("")
	}
	return &Resolver{
		logger:    logger,
		providers: providers,
		fallback:  fallback,
	}
}

// Resolve never returns an empty URL.
func (r *Resolver) Resolve(ctx context.Context, q Query) string {
	ctx, span := otel.Tracer("ImageResolver").Start(ctx, "Resolve", trace.WithAttributes(
		attribute.String("image.name", q.Name),
		attribute.String("image.category", q.Category.String()),
		attribute.String("image.city", q.City),
	))
	defer span.End()

	for _, p := range r.providers {
		if url, ok := p.Find(ctx, q); ok && url != "" {
			r.record(ctx, span, p.Name())
			return url
		}
		r.logger.Debug("Image provider had no result",
			zap.String("provider", p.Name()),
			zap.String("name", q.Name),
			zap.String("category", q.Category.String()))
	}

	url, _ := r.fallback.Find(ctx, q)
	r.record(ctx, span, r.fallback.Name())
	return url
}

func (r *Resolver) record(ctx context.Context, span trace.Span, provider string) {
	span.SetAttributes(attribute.String("image.provider", provider))
	span.SetStatus(codes.Ok, "Image resolved")
	metrics.Get().ImageResolutionsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", provider)))
}
