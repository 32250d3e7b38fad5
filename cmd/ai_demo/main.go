package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Santhosh-R2/smart-travel/internal/ai"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	req := ai.ItineraryRequest{
		Destination: "Jaipur",
		Days:        3,
		Interests:   []string{"forts", "street food"},
	}
	fmt.Printf("Planning %d days in %s...\n", req.Days, req.Destination)

	itinerary, err := provider.GenerateItinerary(ctx, req, nil)
	if err != nil {
		log.Fatalf("Error generating itinerary: %v", err)
	}

	fmt.Printf("Summary: %s\n", itinerary.Summary)
	for _, day := range itinerary.Days {
		fmt.Printf("Day %d: %s\n", day.Day, day.Title)
		for _, a := range day.Activities {
			fmt.Printf("  [%s] %s — %s\n", a.TimeOfDay, a.Name, a.Description)
		}
	}
	for _, tip := range itinerary.Tips {
		fmt.Printf("Tip: %s\n", tip)
	}
}
