package planner

import (
	"context"

	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

// Repository is the single authoritative planner store.
// Every mutation returns the list as it stands afterwards.
type Repository interface {
	List(ctx context.Context) ([]models.PlannerEntry, error)
	// Add is a no-op when an entry with the same ID exists.
	Add(ctx context.Context, entry models.PlannerEntry) ([]models.PlannerEntry, error)
	// Remove is a no-op when the ID is absent.
	Remove(ctx context.Context, id string) ([]models.PlannerEntry, error)
}
