package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

var _ Repository = (*FileRepository)(nil)

// FileRepository keeps the planner as a JSON array in one file.
// Writes go to a temp file in the same directory which is then renamed over the target.
type FileRepository struct {
	logger *zap.Logger
	path   string
	mu     sync.Mutex
}

func NewFileRepository(path string, logger *zap.Logger) *FileRepository {
	return &FileRepository{
		logger: logger,
		path:   path,
	}
}

func (r *FileRepository) List(_ context.Context) ([]models.PlannerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(), nil
}

func (r *FileRepository) Add(_ context.Context, entry models.PlannerEntry) ([]models.PlannerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.read()
	if slices.ContainsFunc(entries, func(e models.PlannerEntry) bool { return e.ID == entry.ID }) {
		return entries, nil
	}
	entries = append(entries, entry)
	if err := r.write(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *FileRepository) Remove(_ context.Context, id string) ([]models.PlannerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.read()
	kept := slices.DeleteFunc(slices.Clone(entries), func(e models.PlannerEntry) bool { return e.ID == id })
	if len(kept) == len(entries) {
		return entries, nil
	}
	if err := r.write(kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// read treats a missing or unreadable file as an empty planner.
func (r *FileRepository) read() []models.PlannerEntry {
	entries := []models.PlannerEntry{}
	b, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("Failed to read planner file", zap.String("path", r.path), zap.Error(err))
		}
		return entries
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		r.logger.Warn("Planner file is not valid JSON, starting empty", zap.String("path", r.path), zap.Error(err))
		return []models.PlannerEntry{}
	}
	if entries == nil {
		entries = []models.PlannerEntry{}
	}
	return entries
}

func (r *FileRepository) write(entries []models.PlannerEntry) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode planner: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create planner directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".planner-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp planner file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write planner: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync planner: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close planner: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace planner file: %w", err)
	}
	return nil
}
