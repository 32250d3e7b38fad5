package service

import (
	"context"
	"log"
	"time"

	"github.com/Santhosh-R2/smart-travel/internal/ai"
	"github.com/Santhosh-R2/smart-travel/internal/maps"
)

// attractionsTimeout caps the Places lookup so a slow Maps call cannot stall
// itinerary generation; the model can plan without it.
const attractionsTimeout = 5 * time.Second

// TripPlanner orchestrates Places lookups and AI itinerary generation.
type TripPlanner struct {
	provider ai.LLMProvider
	places   *maps.PlacesService
}

// NewTripPlanner creates a TripPlanner with initialized dependencies.
// places may be nil, in which case plans are generated without verified
// attractions.
func NewTripPlanner(provider ai.LLMProvider, places *maps.PlacesService) *TripPlanner {
	return &TripPlanner{provider: provider, places: places}
}

// PlanResult bundles the generated itinerary with the verified attractions
// that anchored it.
type PlanResult struct {
	Itinerary   *ai.Itinerary `json:"itinerary"`
	Attractions []maps.Place  `json:"attractions,omitempty"`
}

// Plan looks up real attractions for the destination, then asks the model
// for a day-by-day itinerary anchored on them.
func (p *TripPlanner) Plan(ctx context.Context, req ai.ItineraryRequest) (*PlanResult, error) {
	var (
		places []maps.Place
		names  []string
	)
	if p.places != nil {
		pctx, cancel := context.WithTimeout(ctx, attractionsTimeout)
		result, err := p.places.SearchAttractions(pctx, req.Destination)
		cancel()
		if err != nil {
			// Not fatal; the model falls back on its own knowledge.
			log.Printf("attractions lookup for %q failed: %v", req.Destination, err)
		} else {
			places = result.Places
			for _, pl := range places {
				names = append(names, pl.Name)
			}
		}
	}

	itinerary, err := p.provider.GenerateItinerary(ctx, req, names)
	if err != nil {
		return nil, err
	}

	return &PlanResult{Itinerary: itinerary, Attractions: places}, nil
}
