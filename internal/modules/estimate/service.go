// README: Deterministic trip cost engine: seeded draws, mode pricing, tips.
package estimate

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"
)

var (
	// ErrBadRequest is returned when a required field is missing before any
	// computation begins.
	ErrBadRequest = errors.New("missing trip details")
	// ErrBadDate is returned when the travel date is not YYYY-MM-DD.
	ErrBadDate = errors.New("invalid travel date, expected YYYY-MM-DD")
)

const (
	currency   = "INR"
	dateLayout = "2006-01-02"

	weekendSurcharge = 1.1
	weekendLabel     = "Weekend Surcharge"
)

// Service computes trip cost estimates. It is stateless; every call owns its
// own seeded generator, so concurrent calls never observe each other.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Estimate produces the cost breakdown, ETA, and tips for one trip request.
// Repeated calls with the same origin, destination, mode, and date return
// identical drawn figures; party size only scales the per-person terms.
func (s *Service) Estimate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Origin) == "" ||
		strings.TrimSpace(req.Destination) == "" ||
		req.Mode == "" || req.PartySize < 1 || req.TravelDate == "" {
		return nil, ErrBadRequest
	}
	date, err := time.Parse(dateLayout, req.TravelDate)
	if err != nil {
		return nil, ErrBadDate
	}

	draws := newDrawSequence(deriveSeed(req.Origin, req.Destination, req.Mode, req.TravelDate))

	// Draw 1 happens only when the caller supplied no usable distance. The
	// skip moves every later draw one slot earlier; that asymmetry is part
	// of the reproducibility contract, not an accident.
	distanceKm := req.KnownDistanceKm
	if distanceKm <= 0.1 {
		distanceKm = float64(draws.intBetween(30, 150))
	}

	isWeekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
	demand := 1.0
	var holidayName *string
	if isWeekend {
		demand = weekendSurcharge
		name := weekendLabel
		holidayName = &name
	}

	pax := int64(req.PartySize)

	// Transport: fuel-based modes split one vehicle across the party, so
	// pax never enters the formula. Everything else buys pax tickets.
	var transport int64
	if mileage, ok := mileageKmPerLitre[req.Mode]; ok {
		litres := distanceKm / mileage
		transport = int64(math.Floor(litres * fuelPricePerLitre * demand))
	} else {
		rate, ok := ticketRatePerKm[req.Mode]
		if !ok {
			rate = defaultTicketRate
		}
		transport = int64(math.Floor(distanceKm * rate * float64(pax) * demand))
	}

	etaSeconds := int64(math.Round(distanceKm / speedFor(req.Mode) * 3600))

	// Draws 2-4: meal unit prices. These are consumed unconditionally so
	// toggling a meal flag cannot shift the later draws.
	breakfastUnit := draws.intBetween(80, 150)
	lunchUnit := draws.intBetween(120, 250)
	dinnerUnit := draws.intBetween(120, 250)

	var food int64
	if len(req.Meals) >= 3 {
		if req.Meals[0] {
			food += breakfastUnit * pax
		}
		if req.Meals[1] {
			food += lunchUnit * pax
		}
		if req.Meals[2] {
			food += dinnerUnit * pax
		}
	}

	// Draw 5: room price, only when a stay is plausible (requested and far
	// enough from home). Two people per room, minimum one room.
	var accommodation int64
	if req.IncludeAccommodation && distanceKm > 50 {
		rooms := (pax + 1) / 2
		if rooms < 1 {
			rooms = 1
		}
		accommodation = rooms * draws.intBetween(600, 1500)
	}

	// Draws 6-7: tolls/parking plus per-person entry fees.
	misc := draws.intBetween(30, 100) + draws.intBetween(30, 100)*pax

	tips := draws.sample(tipPool(req.Mode), 2)

	breakdown := Breakdown{
		Transport:     transport,
		Food:          food,
		Accommodation: accommodation,
		Miscellaneous: misc,
	}

	return &Result{
		TotalCost:            transport + food + accommodation + misc,
		Currency:             currency,
		IsHoliday:            isWeekend,
		HolidayName:          holidayName,
		EstimatedTimeSeconds: etaSeconds,
		Breakdown:            breakdown,
		Tips:                 strings.Join(tips, " "),
	}, nil
}
