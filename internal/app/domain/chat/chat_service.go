package chat

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/models"
	"github.com/FACorreiaa/mindful-miles/internal/app/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	Reply(ctx context.Context, message string) (string, error)
}

type ServiceImpl struct {
	logger    *zap.Logger
	generator Generator
}

// NewService takes a nil generator when no credential is configured.
func NewService(generator Generator, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		generator: generator,
	}
}

// Reply forwards message to the model once. It never retries.
func (s *ServiceImpl) Reply(ctx context.Context, message string) (string, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "Reply", trace.WithAttributes(
		attribute.Int("chat.message_length", len(message)),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "Reply"))

	if strings.TrimSpace(message) == "" {
		s.record(ctx, "invalid")
		span.SetStatus(codes.Error, "Empty message")
		return "", fmt.Errorf("%w: message required", models.ErrValidation)
	}
	if s.generator == nil {
		s.record(ctx, "unconfigured")
		l.Warn("Chat requested without a Gemini API key")
		span.SetStatus(codes.Error, "Chat not configured")
		return "", models.ErrChatNotConfigured
	}

	reply, err := s.generator.Generate(ctx, message)
	if err != nil {
		s.record(ctx, "error")
		l.Error("Gemini error", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Gemini request failed")
		metrics.Get().UpstreamErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", "gemini")))
		return "", models.ErrReplyUnavailable
	}

	s.record(ctx, "ok")
	span.SetStatus(codes.Ok, "Reply generated")
	return reply, nil
}

func (s *ServiceImpl) record(ctx context.Context, outcome string) {
	metrics.Get().ChatRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
