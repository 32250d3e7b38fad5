// README: Redis-backed quote cache; safe because estimates are deterministic.
package estimate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keeps recently served estimates in Redis. The engine is deterministic
// for a given request, so a cached quote can never disagree with a fresh one;
// the cache only saves the recomputation.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// key covers every field that can change the response: the seed inputs plus
// party size, flags, and the supplied distance.
func key(req Request) string {
	meals := make([]string, len(req.Meals))
	for i, m := range req.Meals {
		if m {
			meals[i] = "1"
		} else {
			meals[i] = "0"
		}
	}
	return fmt.Sprintf("estimate:%s:%s:%s:%s:%d:%t:%s:%g",
		strings.ToLower(req.Origin),
		strings.ToLower(req.Destination),
		req.Mode,
		req.TravelDate,
		req.PartySize,
		req.IncludeAccommodation,
		strings.Join(meals, ","),
		req.KnownDistanceKm,
	)
}

// Get returns the cached result for req, or (nil, false). Redis errors are
// treated as misses; the engine is cheap enough to recompute.
func (c *Cache) Get(ctx context.Context, req Request) (*Result, bool) {
	raw, err := c.rdb.Get(ctx, key(req)).Bytes()
	if err != nil {
		return nil, false
	}
	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false
	}
	return &res, true
}

// Put stores res under the request's key for the configured TTL.
func (c *Cache) Put(ctx context.Context, req Request, res *Result) {
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key(req), raw, c.ttl).Err()
}
