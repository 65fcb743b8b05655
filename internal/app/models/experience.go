package models

// Category is the normalized wellness-activity classification of a POI.
type Category string

const (
	CategoryMeditation    Category = "Meditation"
	CategoryHerbalTherapy Category = "Herbal Therapy"
	CategoryCooking       Category = "Cooking"
	CategoryNature        Category = "Nature"
	CategoryOther         Category = "Other"
)

// CategoryAll is the grid filter value that keeps every category.
const CategoryAll = "All"

func (c Category) String() string {
	return string(c)
}

// Experience is a single enriched wellness spot shown in the results grid.
type Experience struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Benefits    string   `json:"benefits"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	Location    string   `json:"location"`
}

// PlannerEntry projects an experience to what the planner keeps.
func (e Experience) PlannerEntry() PlannerEntry {
	return PlannerEntry{
		ID:       e.ID,
		Name:     e.Name,
		Location: e.Location,
		Type:     e.Category.String(),
	}
}
