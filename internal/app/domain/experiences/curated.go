package experiences

import (
	"github.com/FACorreiaa/mindful-miles/internal/app/domain/category"
	"github.com/FACorreiaa/mindful-miles/internal/app/domain/imagery"
	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

// Curated returns the fixed records shown when a city has no spots.
func Curated(city string, static *imagery.StaticProvider) []models.Experience {
	if static == nil {
		static = imagery.NewStaticProvider("")
	}
	return []models.Experience{
		{
			ID:          "cur-1",
			Name:        "Morning Yoga by the Ganges",
			Type:        "yoga",
			Category:    models.CategoryMeditation,
			Description: "Guided riverside yoga",
			Benefits:    "Stress reduction",
			Duration:    "1 hour",
			Image:       static.URL(models.CategoryMeditation),
			Location:    city,
		},
		{
			ID:          "cur-2",
			Name:        "Ayurvedic Therapy",
			Type:        "spa",
			Category:    models.CategoryHerbalTherapy,
			Description: "Traditional ayurveda",
			Benefits:    "Detox",
			Duration:    "90 mins",
			Image:       static.URL(models.CategoryHerbalTherapy),
			Location:    city,
		},
	}
}

// FilterByCategory keeps the experiences of one category. "All" or an empty filter keeps everything.
func FilterByCategory(list []models.Experience, filter string) []models.Experience {
	c, ok := category.Parse(filter)
	if !ok {
		return list
	}
	out := make([]models.Experience, 0, len(list))
	for _, e := range list {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}
