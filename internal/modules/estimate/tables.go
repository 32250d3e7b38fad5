// README: Static rate tables (mileage, ticket rates, speeds) and the tip pool.
package estimate

import "fmt"

// Petrol at roughly 105 INR per litre, the all-India average the product
// launched with.
const fuelPricePerLitre = 105

// mileageKmPerLitre lists the fuel-based modes. A mode appearing here uses
// the shared-vehicle fuel formula; every other mode is ticket-based.
var mileageKmPerLitre = map[Mode]float64{
	ModeCar:  20,
	ModeBike: 45,
}

// ticketRatePerKm is the per-person per-km fare for ticket-based modes.
// Unknown modes fall back to defaultTicketRate.
var ticketRatePerKm = map[Mode]float64{
	ModeTrain:           0.80, // sleeper class average
	ModeBus:             1.20, // state transport average
	ModePublicTransport: 0.50, // metro/local
}

const defaultTicketRate = 1.0

// avgSpeedKmph feeds the ETA calculation.
var avgSpeedKmph = map[Mode]float64{
	ModeCar:             40,
	ModeBike:            45,
	ModeTrain:           60,
	ModeBus:             42,
	ModePublicTransport: 25,
}

const defaultSpeedKmph = 50

func speedFor(mode Mode) float64 {
	if v, ok := avgSpeedKmph[mode]; ok {
		return v
	}
	return defaultSpeedKmph
}

// tipPool returns the six advisory strings the tip selector samples from.
// Two of them are templated with the mode name.
func tipPool(mode Mode) []string {
	return []string{
		fmt.Sprintf("Book %s tickets in advance for better prices.", mode),
		"Carry a reusable water bottle to save money.",
		"Check weather before packing.",
		"Early morning travel avoids traffic and heat.",
		fmt.Sprintf("Compare prices across platforms for %s bookings.", mode),
		"Keep digital copies of all IDs and tickets.",
	}
}
