// README: Trip aggregate, budget snapshot, expenses, and blog definitions.
package trip

import (
	"time"

	"github.com/Santhosh-R2/smart-travel/internal/modules/estimate"
	"github.com/Santhosh-R2/smart-travel/internal/types"
)

type Status string

const (
	StatusPlanning  Status = "planning"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPlanning, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ExpenseCategory mirrors the budget breakdown plus the two ad-hoc buckets
// users log against.
var ExpenseCategories = []string{
	"Food", "Transport", "Accommodation", "Miscellaneous", "Fuel", "Tickets",
}

func ValidExpenseCategory(c string) bool {
	for _, v := range ExpenseCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Budget is the estimate snapshot taken when the trip was created. It is
// not recomputed afterwards; the engine's determinism makes the snapshot
// reproducible from the trip fields anyway.
type Budget struct {
	Total     types.Money        `json:"total"`
	Breakdown estimate.Breakdown `json:"breakdown"`
	Tips      string             `json:"tips"`
}

type Expense struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Category    string    `json:"category"`
	SpentAt     time.Time `json:"spentAt"`
}

// Blog is the optional public write-up attached to a finished trip.
type Blog struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Photos      []string   `json:"photos"`
	Visible     bool       `json:"visible"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type Trip struct {
	ID        types.ID  `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	Origin    string    `json:"origin"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	TransportMode        estimate.Mode `json:"transportMode"`
	PartySize            int           `json:"partySize"`
	DistanceKm           float64       `json:"distanceKm"`
	IncludeAccommodation bool          `json:"includeAccommodation"`
	MealMask             string        `json:"mealMask"` // "1,0,1" order: breakfast, lunch, dinner

	Budget    Budget    `json:"budget"`
	Expenses  []Expense `json:"expenses"`
	Blog      *Blog     `json:"blog,omitempty"`
	IsPublic  bool      `json:"isPublic"`
	Status    Status    `json:"status"`
	IsHoliday bool      `json:"isHoliday"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Visible reports whether uid may read the trip. Owners always can; others
// need the trip public or its blog published.
func (t *Trip) VisibleTo(uid string) bool {
	if t.OwnerID == uid {
		return true
	}
	if t.IsPublic {
		return true
	}
	return t.Blog != nil && t.Blog.Visible
}
