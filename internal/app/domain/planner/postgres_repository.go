package planner

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

var _ Repository = (*PostgresRepository)(nil)

const plannerTable = "planner_entries"

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository stores entries in planner_entries, ordered by insertion sequence.
type PostgresRepository struct {
	logger *zap.Logger
	db     DB
	psql   sq.StatementBuilderType
}

func NewPostgresRepository(db DB, logger *zap.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		db:     db,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.PlannerEntry, error) {
	query, args, err := r.psql.
		Select("id", "name", "location", "type").
		From(plannerTable).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build planner query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list planner entries", zap.Error(err))
		return nil, fmt.Errorf("failed to list planner entries: %w", err)
	}
	defer rows.Close()

	entries := []models.PlannerEntry{}
	for rows.Next() {
		var e models.PlannerEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Location, &e.Type); err != nil {
			r.logger.Error("Failed to scan planner entry", zap.Error(err))
			return nil, fmt.Errorf("failed to scan planner entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating planner rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating planner rows: %w", err)
	}
	return entries, nil
}

func (r *PostgresRepository) Add(ctx context.Context, entry models.PlannerEntry) ([]models.PlannerEntry, error) {
	query, args, err := r.psql.
		Insert(plannerTable).
		Columns("id", "name", "location", "type").
		Values(entry.ID, entry.Name, entry.Location, entry.Type).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build planner insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.logger.Error("Failed to add planner entry", zap.String("id", entry.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to add planner entry: %w", err)
	}
	return r.List(ctx)
}

func (r *PostgresRepository) Remove(ctx context.Context, id string) ([]models.PlannerEntry, error) {
	query, args, err := r.psql.
		Delete(plannerTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build planner delete: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.logger.Error("Failed to remove planner entry", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to remove planner entry: %w", err)
	}
	return r.List(ctx)
}
