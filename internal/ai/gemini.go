package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Set a reasonable temperature for creative but structured output.
	model.SetTemperature(0.6)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

const maxItineraryDays = 14

// GenerateItinerary asks the model for a structured day-by-day plan.
func (p *GeminiProvider) GenerateItinerary(ctx context.Context, req ItineraryRequest, knownAttractions []string) (*Itinerary, error) {
	if req.Destination == "" {
		return nil, fmt.Errorf("destination is required")
	}
	if req.Days < 1 {
		req.Days = 1
	}
	if req.Days > maxItineraryDays {
		req.Days = maxItineraryDays
	}

	prompt := buildItineraryPrompt(req, knownAttractions)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	// Extract text from the response parts.
	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (though json mode should handle this, safety first).
	cleanJSON := cleanJSONString(responseText.String())

	var result Itinerary
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}
	if result.Destination == "" {
		result.Destination = req.Destination
	}

	return &result, nil
}

// buildItineraryPrompt constructs the instructions for the AI.
func buildItineraryPrompt(req ItineraryRequest, knownAttractions []string) string {
	interests := "general sightseeing"
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}

	budget := "not specified"
	if req.BudgetINR > 0 {
		budget = fmt.Sprintf("%d INR total", req.BudgetINR)
	}

	attractions := "NONE"
	if len(knownAttractions) > 0 {
		attractions = strings.Join(knownAttractions, "; ")
	}

	return fmt.Sprintf(`Role: You are a practical travel planner for trips within India.

Task: Plan a %d-day itinerary for %s.
Traveler interests: %s
Budget: %s
Verified nearby attractions (prefer these over invented ones): %s

RULES:
1. Exactly %d entries in "days", numbered from 1.
2. Each day has 2 to 4 activities, each tagged "morning", "afternoon" or "evening".
3. Use the verified attractions where they fit; do not invent famous-sounding
   places that do not exist.
4. Keep descriptions to one or two sentences, no markdown.
5. "tips" holds at most 5 short practical notes (transport, season, local customs).
6. Respond with JSON only.

Output JSON Schema:
{
  "destination": "string",
  "summary": "string (two sentences at most)",
  "days": [
    {
      "day": integer,
      "title": "string",
      "activities": [
        {"timeOfDay": "morning" | "afternoon" | "evening", "name": "string", "description": "string"}
      ]
    }
  ],
  "tips": ["string"]
}
`, req.Days, req.Destination, interests, budget, attractions, req.Days)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
