package maps

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"googlemaps.github.io/maps"
)

// ErrNoPhoto is returned when a place has no photos on record.
var ErrNoPhoto = errors.New("place has no photo")

// Place represents a simplified attraction result.
type Place struct {
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	Rating           float32 `json:"rating"`
	PlaceID          string  `json:"placeId"`
	UserRatingsTotal int     `json:"userRatingsTotal"`
}

// AttractionResult bundles the map centre with the attractions found.
type AttractionResult struct {
	Center struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"center"`
	Places []Place `json:"places"`
}

// attractionLimit caps how many places one discovery call returns.
const attractionLimit = 15

// photoMaxWidth is the pixel width requested from the Place Photo API.
const photoMaxWidth = 1000

// PlacesService handles interactions with Google Places. The API key is
// kept so PhotoURL can mint Place Photo links for the frontend.
type PlacesService struct {
	client *maps.Client
	apiKey string
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client, apiKey: apiKey}, nil
}

// SearchAttractions finds tourist attractions in or around the given city.
// Results are the raw Places ranking, trimmed to attractionLimit; the first
// result's coordinates double as the map centre.
func (s *PlacesService) SearchAttractions(ctx context.Context, city string) (*AttractionResult, error) {
	r := &maps.TextSearchRequest{
		Query:    fmt.Sprintf("tourist attractions in %s", city),
		Type:     "tourist_attraction",
		Language: "en",
		Region:   "IN",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("no attractions found for %q", city)
	}

	out := &AttractionResult{}
	for _, result := range resp.Results {
		out.Places = append(out.Places, Place{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Lat:              result.Geometry.Location.Lat,
			Lng:              result.Geometry.Location.Lng,
			Rating:           result.Rating,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
		})
		if len(out.Places) >= attractionLimit {
			break
		}
	}
	out.Center.Lat = out.Places[0].Lat
	out.Center.Lng = out.Places[0].Lng
	return out, nil
}

// PhotoURL looks up the lead photo for a place id and returns a Place
// Photo link the browser can load directly. Places without photos yield
// ErrNoPhoto.
func (s *PlacesService) PhotoURL(ctx context.Context, placeID string) (string, error) {
	resp, err := s.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  []maps.PlaceDetailsFieldMask{maps.PlaceDetailsFieldMaskPhotos},
	})
	if err != nil {
		return "", fmt.Errorf("place details error: %w", err)
	}
	if len(resp.Photos) == 0 {
		return "", ErrNoPhoto
	}

	q := url.Values{}
	q.Set("maxwidth", fmt.Sprint(photoMaxWidth))
	q.Set("photo_reference", resp.Photos[0].PhotoReference)
	q.Set("key", s.apiKey)
	return "https://maps.googleapis.com/maps/api/place/photo?" + q.Encode(), nil
}
