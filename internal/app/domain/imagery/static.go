package imagery

import (
	"context"
	"strings"

	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

const defaultAssetPath = "/images/yoga.svg"

var categoryAssets = map[models.Category]string{
	models.CategoryMeditation:    "/images/yoga.svg",
	models.CategoryHerbalTherapy: "/images/herbal.svg",
	models.CategoryCooking:       "/images/cooking.svg",
	models.CategoryNature:        "/images/nature.svg",
	models.CategoryOther:         defaultAssetPath,
}

// StaticProvider maps a category to a bundled asset under baseURL. It always succeeds.
type StaticProvider struct {
	baseURL string
}

func NewStaticProvider(baseURL string) *StaticProvider {
	return &StaticProvider{baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *StaticProvider) Name() string { return "static" }

func (p *StaticProvider) Find(_ context.Context, q Query) (string, bool) {
	return p.URL(q.Category), true
}

// URL returns the fallback asset for c; unmapped categories share the default asset.
func (p *StaticProvider) URL(c models.Category) string {
	path, ok := categoryAssets[c]
	if !ok {
		path = defaultAssetPath
	}
	return p.baseURL + path
}

// DefaultURL is the asset shown when a card image fails to load.
func (p *StaticProvider) DefaultURL() string {
	return p.baseURL + defaultAssetPath
}
