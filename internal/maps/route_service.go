package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// RouteService handles interactions with Google Maps Directions.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// travelMode maps our transport labels onto the Directions API modes.
func travelMode(mode string) maps.Mode {
	switch mode {
	case "Train", "Bus", "Public Transport":
		return maps.TravelModeTransit
	default:
		// Car and Bike both ride the road network.
		return maps.TravelModeDriving
	}
}

// GetRouteDistance returns the road distance in km and the API's duration for
// a trip from origin to destination. The distance is what feeds the cost
// engine as the known distance; callers fall back to the engine's own drawn
// distance when this errors.
func (s *RouteService) GetRouteDistance(ctx context.Context, origin, destination, mode string) (float64, time.Duration, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        travelMode(mode),
		Language:    "en",
		Region:      "IN", // Bias results to India
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, 0, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, 0, fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return float64(leg.Distance.Meters) / 1000.0, leg.Duration, nil
}
