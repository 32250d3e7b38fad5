package ai

// ItineraryRequest describes the trip the user wants planned.
type ItineraryRequest struct {
	// Destination is the city or region to plan for.
	Destination string `json:"destination"`

	// Days is the length of the stay. Clamped to a sane range by the provider.
	Days int `json:"days"`

	// Interests are free-form themes ("food", "temples", "trekking").
	Interests []string `json:"interests,omitempty"`

	// BudgetINR is the total budget in rupees, 0 when the user gave none.
	BudgetINR int64 `json:"budgetInr,omitempty"`
}

// Activity is a single itinerary entry.
type Activity struct {
	// TimeOfDay is one of "morning", "afternoon", "evening".
	TimeOfDay string `json:"timeOfDay"`

	Name string `json:"name"`

	// Description is a one-or-two sentence note on what to do there.
	Description string `json:"description"`
}

// DayPlan is one day of the itinerary.
type DayPlan struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the structured output from the AI model.
type Itinerary struct {
	Destination string    `json:"destination"`
	Summary     string    `json:"summary"`
	Days        []DayPlan `json:"days"`

	// Tips are short practical notes (transit passes, best season, dress codes).
	Tips []string `json:"tips,omitempty"`
}
