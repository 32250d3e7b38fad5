// README: CLI front-end for the cost engine; prints a JSON estimate to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/Santhosh-R2/smart-travel/internal/modules/estimate"
)

// Arguments: origin destination mode passengers date includeAccommodation
// mealMask [distanceKm]. Errors go to stdout as {"error": "..."} with exit 1
// so callers can treat stdout as the single result channel.
func main() {
	args := os.Args[1:]
	if len(args) < 7 {
		fail("Insufficient arguments")
	}

	pax, err := strconv.Atoi(args[3])
	if err != nil {
		fail("invalid passenger count")
	}

	req := estimate.Request{
		Origin:               args[0],
		Destination:          args[1],
		Mode:                 estimate.Mode(args[2]),
		PartySize:            pax,
		TravelDate:           args[4],
		IncludeAccommodation: args[5] == "true",
		Meals:                estimate.ParseMealMask(args[6]),
	}
	if len(args) > 7 {
		req.KnownDistanceKm = estimate.ParseDistance(args[7])
	}

	result, err := estimate.NewService().Estimate(context.Background(), req)
	if err != nil {
		fail(err.Error())
	}

	out, err := json.Marshal(result)
	if err != nil {
		fail(err.Error())
	}
	fmt.Println(string(out))
}

func fail(msg string) {
	out, _ := json.Marshal(map[string]string{"error": msg})
	fmt.Println(string(out))
	os.Exit(1)
}
