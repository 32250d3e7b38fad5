// README: Seed derivation and the ordered draw sequence behind every estimate.
package estimate

import (
	"math/rand"
	"strings"
)

// deriveSeed folds the route identity into the generator seed by summing the
// code points of "origin-destination-mode-date" with origin and destination
// lowercased. Party size and preference flags are deliberately left out so a
// re-quote of the same route on the same date reproduces the same drawn
// figures regardless of how many people travel.
func deriveSeed(origin, destination string, mode Mode, date string) int64 {
	key := strings.ToLower(origin) + "-" + strings.ToLower(destination) + "-" + string(mode) + "-" + date
	var seed int64
	for _, r := range key {
		seed += int64(r)
	}
	return seed
}

// drawSequence wraps a seeded generator owned by exactly one Estimate call.
// Sharing an instance across requests would interleave their draws and break
// reproducibility, so callers construct one per computation and drop it.
//
// Draw order is a contract: fallback distance (only when no usable distance
// was supplied), breakfast, lunch, dinner, room price (only when
// accommodation applies), fixed misc, per-person misc, then the two tip
// picks. Conditional draws shift the positions of everything after them;
// that shift is intentional and covered by tests.
type drawSequence struct {
	rng *rand.Rand
}

func newDrawSequence(seed int64) *drawSequence {
	return &drawSequence{rng: rand.New(rand.NewSource(seed))}
}

// intBetween draws from [lo, hi] inclusive.
func (d *drawSequence) intBetween(lo, hi int64) int64 {
	return lo + d.rng.Int63n(hi-lo+1)
}

// sample draws n distinct entries from pool without replacement. The result
// order follows the generator, not the pool declaration order.
func (d *drawSequence) sample(pool []string, n int) []string {
	remaining := append([]string(nil), pool...)
	if n > len(remaining) {
		n = len(remaining)
	}
	picked := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx := d.rng.Intn(len(remaining))
		picked = append(picked, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return picked
}
