// Package imagery resolves a display image for an experience by trying an
// ordered list of providers and taking the first hit.
package imagery

import (
	"context"

	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

// Query describes the experience an image is wanted for.
type Query struct {
	Name     string
	Category models.Category
	City     string
}

// Provider is one strategy of the cascade. Find absorbs its own failures and
// reports them as ok=false so the next provider can run.
type Provider interface {
	Name() string
	Find(ctx context.Context, q Query) (url string, ok bool)
}
