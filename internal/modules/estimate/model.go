// README: Request/response contracts for the trip cost engine.
package estimate

import (
	"strconv"
	"strings"
)

// Mode is the transport mode label sent by clients. The raw string takes part
// in seed derivation, so the values here must stay exactly as the clients
// spell them.
type Mode string

const (
	ModeCar             Mode = "Car"
	ModeBike            Mode = "Bike"
	ModeTrain           Mode = "Train"
	ModeBus             Mode = "Bus"
	ModePublicTransport Mode = "Public Transport"
	ModeOther           Mode = "Other"
)

// Request carries everything one cost computation needs. It is a value
// object; nothing about it outlives the Estimate call.
type Request struct {
	Origin               string
	Destination          string
	Mode                 Mode
	PartySize            int
	TravelDate           string // YYYY-MM-DD
	IncludeAccommodation bool
	Meals                []bool // breakfast, lunch, dinner
	KnownDistanceKm      float64
}

// Breakdown splits the total into the four cost categories, whole rupees.
type Breakdown struct {
	Transport     int64 `json:"transport"`
	Food          int64 `json:"food"`
	Accommodation int64 `json:"accommodation"`
	Miscellaneous int64 `json:"miscellaneous"`
}

// Result is the full cost estimate returned to callers.
type Result struct {
	TotalCost            int64     `json:"totalCost"`
	Currency             string    `json:"currency"`
	IsHoliday            bool      `json:"isHoliday"`
	HolidayName          *string   `json:"holidayName"`
	EstimatedTimeSeconds int64     `json:"estimatedTimeSeconds"`
	Breakdown            Breakdown `json:"breakdown"`
	Tips                 string    `json:"tips"`
}

// ParseMealMask turns a "1,0,1" meal mask into boolean flags. Anything other
// than "1" counts as false; a short mask is returned as-is and the food
// calculator treats it as "no meals".
func ParseMealMask(mask string) []bool {
	parts := strings.Split(mask, ",")
	flags := make([]bool, len(parts))
	for i, p := range parts {
		flags[i] = strings.TrimSpace(p) == "1"
	}
	return flags
}

// ParseDistance reads an optional known-distance value. Non-numeric input is
// tolerated and mapped to 0, which makes the engine fall back to a drawn
// distance.
func ParseDistance(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
