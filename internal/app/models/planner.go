package models

// PlannerEntry is a saved experience in the user's planner.
type PlannerEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

// PlannerResponse is returned by the planner mutation endpoints.
type PlannerResponse struct {
	Message string         `json:"message"`
	Planner []PlannerEntry `json:"planner"`
}
