package planner

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
	List(ctx context.Context) ([]models.PlannerEntry, error)
	Add(ctx context.Context, entry models.PlannerEntry) ([]models.PlannerEntry, error)
	Remove(ctx context.Context, id string) ([]models.PlannerEntry, error)
}

type ServiceImpl struct {
	logger *zap.Logger
	repo   Repository
}

func NewService(repo Repository, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) List(ctx context.Context) ([]models.PlannerEntry, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "List")
	defer span.End()

	entries, err := s.repo.List(ctx)
	s.record(ctx, "list", err)
	if err != nil {
		s.logger.Error("Failed to list planner", zap.String("method", "List"), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list planner")
		return nil, fmt.Errorf("failed to list planner: %w", err)
	}

	span.SetAttributes(attribute.Int("planner.size", len(entries)))
	span.SetStatus(codes.Ok, "Planner listed")
	return entries, nil
}

// Add stores entry unless its ID is already planned. A blank ID is ErrValidation.
func (s *ServiceImpl) Add(ctx context.Context, entry models.PlannerEntry) ([]models.PlannerEntry, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "Add", trace.WithAttributes(
		attribute.String("planner.entry_id", entry.ID),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "Add"), zap.String("entryID", entry.ID))

	entry.ID = strings.TrimSpace(entry.ID)
	if entry.ID == "" {
		err := fmt.Errorf("%w: planner item with id required", models.ErrValidation)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Missing entry id")
		return nil, err
	}

	entries, err := s.repo.Add(ctx, entry)
	s.record(ctx, "add", err)
	if err != nil {
		l.Error("Failed to add planner entry", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to add planner entry")
		return nil, fmt.Errorf("failed to add planner entry: %w", err)
	}

	metrics.Get().PlannerEntriesGauge.Record(ctx, int64(len(entries)))
	l.Info("Planner entry added", zap.Int("size", len(entries)))
	span.SetStatus(codes.Ok, "Planner entry added")
	return entries, nil
}

func (s *ServiceImpl) Remove(ctx context.Context, id string) ([]models.PlannerEntry, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "Remove", trace.WithAttributes(
		attribute.String("planner.entry_id", id),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "Remove"), zap.String("entryID", id))

	id = strings.TrimSpace(id)
	if id == "" {
		err := fmt.Errorf("%w: planner item id required", models.ErrValidation)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Missing entry id")
		return nil, err
	}

	entries, err := s.repo.Remove(ctx, id)
	s.record(ctx, "remove", err)
	if err != nil {
		l.Error("Failed to remove planner entry", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to remove planner entry")
		return nil, fmt.Errorf("failed to remove planner entry: %w", err)
	}

	metrics.Get().PlannerEntriesGauge.Record(ctx, int64(len(entries)))
	l.Info("Planner entry removed", zap.Int("size", len(entries)))
	span.SetStatus(codes.Ok, "Planner entry removed")
	return entries, nil
}

func (s *ServiceImpl) record(ctx context.Context, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.Get().PlannerOperationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("result", result),
	))
}
