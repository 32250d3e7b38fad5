// README: Engine tests (determinism, scaling, surcharge, draw-order shifts).
package estimate

import (
	"context"
	"strings"
	"testing"
)

func baseRequest() Request {
	return Request{
		Origin:               "Delhi",
		Destination:          "Agra",
		Mode:                 ModeCar,
		PartySize:            2,
		TravelDate:           "2024-06-10", // a Monday
		IncludeAccommodation: true,
		Meals:                []bool{true, true, true},
		KnownDistanceKm:      200,
	}
}

// sameResult compares two results by value, dereferencing the holiday name.
func sameResult(a, b *Result) bool {
	if (a.HolidayName == nil) != (b.HolidayName == nil) {
		return false
	}
	if a.HolidayName != nil && *a.HolidayName != *b.HolidayName {
		return false
	}
	return a.TotalCost == b.TotalCost &&
		a.Currency == b.Currency &&
		a.IsHoliday == b.IsHoliday &&
		a.EstimatedTimeSeconds == b.EstimatedTimeSeconds &&
		a.Breakdown == b.Breakdown &&
		a.Tips == b.Tips
}

func mustEstimate(t *testing.T, req Request) *Result {
	t.Helper()
	res, err := NewService().Estimate(context.Background(), req)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	return res
}

// TestEstimate_KnownExample pins the documented Delhi->Agra example: 200 km by
// car for two on a weekday.
func TestEstimate_KnownExample(t *testing.T) {
	res := mustEstimate(t, baseRequest())

	// 200 km / 20 km/l * 105 INR/l, no surcharge, shared vehicle.
	if res.Breakdown.Transport != 1050 {
		t.Errorf("transport = %d, want 1050", res.Breakdown.Transport)
	}
	// 200 km at 40 km/h.
	if res.EstimatedTimeSeconds != 18000 {
		t.Errorf("eta = %d, want 18000", res.EstimatedTimeSeconds)
	}
	if res.IsHoliday {
		t.Error("Monday flagged as holiday")
	}
	if res.HolidayName != nil {
		t.Errorf("holidayName = %q, want nil", *res.HolidayName)
	}
	if res.Currency != "INR" {
		t.Errorf("currency = %q, want INR", res.Currency)
	}
	// Two travellers share one room; room price is drawn from [600, 1500].
	if res.Breakdown.Accommodation < 600 || res.Breakdown.Accommodation > 1500 {
		t.Errorf("accommodation = %d, want one room in [600, 1500]", res.Breakdown.Accommodation)
	}
	// Food: three meals for two people, each unit within its range.
	minFood := int64(80+120+120) * 2
	maxFood := int64(150+250+250) * 2
	if res.Breakdown.Food < minFood || res.Breakdown.Food > maxFood {
		t.Errorf("food = %d, want within [%d, %d]", res.Breakdown.Food, minFood, maxFood)
	}
}

// TestEstimate_Deterministic verifies that repeating a request returns the
// exact same result.
func TestEstimate_Deterministic(t *testing.T) {
	first := mustEstimate(t, baseRequest())
	second := mustEstimate(t, baseRequest())

	if !sameResult(first, second) {
		t.Errorf("repeated estimate differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// TestEstimate_PartySizeScalesOnly checks that party size never changes the
// drawn unit values, only the per-person scaling.
func TestEstimate_PartySizeScalesOnly(t *testing.T) {
	solo := baseRequest()
	solo.PartySize = 1
	group := baseRequest()
	group.PartySize = 3

	resSolo := mustEstimate(t, solo)
	resGroup := mustEstimate(t, group)

	// Fuel-based transport is shared, so it must match exactly.
	if resSolo.Breakdown.Transport != resGroup.Breakdown.Transport {
		t.Errorf("car transport scaled with party size: %d vs %d",
			resSolo.Breakdown.Transport, resGroup.Breakdown.Transport)
	}
	// Food for 1 person with all three meals is exactly the per-unit sum;
	// for 3 people it must be exactly 3x that.
	if resGroup.Breakdown.Food != 3*resSolo.Breakdown.Food {
		t.Errorf("food units differ across party sizes: solo=%d group=%d",
			resSolo.Breakdown.Food, resGroup.Breakdown.Food)
	}
	// Tips come after all numeric draws; identical draws mean identical tips.
	if resSolo.Tips != resGroup.Tips {
		t.Errorf("tips differ across party sizes:\nsolo:  %s\ngroup: %s",
			resSolo.Tips, resGroup.Tips)
	}
	// 1 person -> 1 room, 3 people -> 2 rooms, same drawn room price.
	if 2*resSolo.Breakdown.Accommodation != resGroup.Breakdown.Accommodation {
		t.Errorf("room price differs across party sizes: solo=%d group=%d",
			resSolo.Breakdown.Accommodation, resGroup.Breakdown.Accommodation)
	}
}

// TestEstimate_CaseInsensitiveRoute verifies the seed ignores route casing.
func TestEstimate_CaseInsensitiveRoute(t *testing.T) {
	lower := baseRequest()
	upper := baseRequest()
	upper.Origin = "DELHI"
	upper.Destination = "AGRA"

	if resL, resU := mustEstimate(t, lower), mustEstimate(t, upper); !sameResult(resL, resU) {
		t.Errorf("route casing changed the estimate:\nlower: %+v\nupper: %+v", resL, resU)
	}
}

// TestEstimate_TotalInvariant sweeps a few request shapes and checks the
// total always equals the breakdown sum.
func TestEstimate_TotalInvariant(t *testing.T) {
	reqs := []Request{
		baseRequest(),
		{Origin: "Mumbai", Destination: "Pune", Mode: ModeBus, PartySize: 4, TravelDate: "2024-06-15", Meals: []bool{true, false, true}},
		{Origin: "Chennai", Destination: "Madurai", Mode: ModeTrain, PartySize: 1, TravelDate: "2024-12-25", IncludeAccommodation: true, Meals: []bool{false, false, false}},
		{Origin: "Kochi", Destination: "Munnar", Mode: Mode("Ferry"), PartySize: 2, TravelDate: "2024-03-03", Meals: []bool{true}},
	}
	for _, req := range reqs {
		res := mustEstimate(t, req)
		sum := res.Breakdown.Transport + res.Breakdown.Food + res.Breakdown.Accommodation + res.Breakdown.Miscellaneous
		if res.TotalCost != sum {
			t.Errorf("%s->%s: total %d != breakdown sum %d", req.Origin, req.Destination, res.TotalCost, sum)
		}
	}
}

// TestEstimate_WeekendSurcharge compares a Saturday against a weekday with a
// known distance, where transport depends only on the fixed tables and the
// demand multiplier.
func TestEstimate_WeekendSurcharge(t *testing.T) {
	weekday := baseRequest() // Monday, transport 1050
	weekend := baseRequest()
	weekend.TravelDate = "2024-06-15" // Saturday

	resWd := mustEstimate(t, weekday)
	resWe := mustEstimate(t, weekend)

	if !resWe.IsHoliday {
		t.Error("Saturday not flagged as holiday")
	}
	if resWe.HolidayName == nil || *resWe.HolidayName != "Weekend Surcharge" {
		t.Errorf("holidayName = %v, want Weekend Surcharge", resWe.HolidayName)
	}
	want := int64(float64(resWd.Breakdown.Transport) * 1.1) // 1155, no rounding loss here
	if resWe.Breakdown.Transport != want {
		t.Errorf("weekend transport = %d, want %d", resWe.Breakdown.Transport, want)
	}
}

// TestEstimate_AccommodationGating: close trips never book rooms, and the
// result must be indistinguishable from not asking for accommodation at all.
func TestEstimate_AccommodationGating(t *testing.T) {
	near := baseRequest()
	near.KnownDistanceKm = 40
	res := mustEstimate(t, near)
	if res.Breakdown.Accommodation != 0 {
		t.Errorf("accommodation = %d for a 40 km trip, want 0", res.Breakdown.Accommodation)
	}

	without := near
	without.IncludeAccommodation = false
	if resOff := mustEstimate(t, without); !sameResult(res, resOff) {
		t.Errorf("gated accommodation changed unrelated figures:\non:  %+v\noff: %+v", res, resOff)
	}
}

// TestEstimate_FallbackDistanceStable: with no known distance the drawn
// fallback must reproduce across calls and stay in [30, 150].
func TestEstimate_FallbackDistanceStable(t *testing.T) {
	req := baseRequest()
	req.Mode = ModeCar
	req.KnownDistanceKm = 0

	first := mustEstimate(t, req)
	second := mustEstimate(t, req)
	if !sameResult(first, second) {
		t.Errorf("fallback-distance estimates differ across calls")
	}

	// Reverse the fuel formula to recover the drawn distance.
	distance := float64(first.Breakdown.Transport) * 20 / 105
	if distance < 29 || distance > 151 {
		t.Errorf("implied fallback distance %.1f outside [30, 150]", distance)
	}
}

// TestEstimate_DrawOrderShift: supplying a known distance skips the fallback
// draw, so meal prices land on different generator positions than the
// no-distance variant of the same route. Both variants must still be
// individually reproducible.
func TestEstimate_DrawOrderShift(t *testing.T) {
	withDist := baseRequest()
	noDist := baseRequest()
	noDist.KnownDistanceKm = 0

	a1 := mustEstimate(t, withDist)
	a2 := mustEstimate(t, withDist)
	b1 := mustEstimate(t, noDist)
	b2 := mustEstimate(t, noDist)

	if !sameResult(a1, a2) || !sameResult(b1, b2) {
		t.Fatal("estimates not reproducible")
	}
	// Not asserting a1 != b1 on food: the shifted draws could coincide by
	// chance for some seeds. Reproducibility per variant is the contract.
}

func TestEstimate_TicketModesScaleWithParty(t *testing.T) {
	req := baseRequest()
	req.Mode = ModeTrain
	req.PartySize = 1
	solo := mustEstimate(t, req)
	req.PartySize = 3
	group := mustEstimate(t, req)

	// 200 km * 0.80 INR/km: 160 for one, 480 for three.
	if solo.Breakdown.Transport != 160 || group.Breakdown.Transport != 480 {
		t.Errorf("train transport = %d / %d, want 160 / 480",
			solo.Breakdown.Transport, group.Breakdown.Transport)
	}
}

func TestEstimate_UnknownModeDefaults(t *testing.T) {
	req := baseRequest()
	req.Mode = Mode("Ferry")
	res := mustEstimate(t, req)

	// Unknown modes price as tickets at 1.0 INR/km and travel at 50 km/h.
	if res.Breakdown.Transport != 200*2 {
		t.Errorf("ferry transport = %d, want 400", res.Breakdown.Transport)
	}
	if res.EstimatedTimeSeconds != 14400 {
		t.Errorf("ferry eta = %d, want 14400", res.EstimatedTimeSeconds)
	}
}

// TestEstimate_ShortMealMask: fewer than three flags means no food cost, not
// an error.
func TestEstimate_ShortMealMask(t *testing.T) {
	req := baseRequest()
	req.Meals = ParseMealMask("1,1")
	res := mustEstimate(t, req)
	if res.Breakdown.Food != 0 {
		t.Errorf("food = %d with a short meal mask, want 0", res.Breakdown.Food)
	}
}

func TestEstimate_TipsDistinct(t *testing.T) {
	pool := tipPool(ModeBus)
	res := mustEstimate(t, Request{
		Origin: "Goa", Destination: "Hampi", Mode: ModeBus,
		PartySize: 2, TravelDate: "2024-10-04", Meals: []bool{true, true, true},
	})

	var found []string
	rest := res.Tips
	for _, tip := range pool {
		if strings.Contains(rest, tip) {
			found = append(found, tip)
		}
	}
	if len(found) != 2 {
		t.Fatalf("expected exactly 2 pool entries in tips %q, matched %d", res.Tips, len(found))
	}
	if found[0] == found[1] {
		t.Error("tip selector repeated an entry")
	}
}

func TestEstimate_InputErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing origin", func(r *Request) { r.Origin = "  " }, ErrBadRequest},
		{"missing destination", func(r *Request) { r.Destination = "" }, ErrBadRequest},
		{"missing mode", func(r *Request) { r.Mode = "" }, ErrBadRequest},
		{"zero party", func(r *Request) { r.PartySize = 0 }, ErrBadRequest},
		{"missing date", func(r *Request) { r.TravelDate = "" }, ErrBadRequest},
		{"bad date format", func(r *Request) { r.TravelDate = "10-06-2024" }, ErrBadDate},
		{"impossible date", func(r *Request) { r.TravelDate = "2024-13-40" }, ErrBadDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := baseRequest()
			tc.mutate(&req)
			if _, err := NewService().Estimate(context.Background(), req); err != tc.wantErr {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
