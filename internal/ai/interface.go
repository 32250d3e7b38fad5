package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// GenerateItinerary produces a structured day-by-day plan for the request.
	// knownAttractions are real place names to anchor the model; may be empty.
	GenerateItinerary(ctx context.Context, req ItineraryRequest, knownAttractions []string) (*Itinerary, error)
}
