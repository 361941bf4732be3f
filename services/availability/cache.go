// File: services/availability/cache.go
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// GridCache caches computed week grids. Implementations must treat entries
// computed under a different calendar day as stale, since past days are
// dropped relative to "today".
type GridCache interface {
	Get(ctx context.Context, professionalID, anchorDate string) (*WeekGrid, bool)
	Set(ctx context.Context, grid *WeekGrid) error
	Invalidate(ctx context.Context, professionalID string) error
}

const gridKeyPrefix = "availability:grid:"

func gridKey(professionalID, anchorDate string) string {
	return fmt.Sprintf("%s%s:%s", gridKeyPrefix, professionalID, anchorDate)
}

// cachedGrid is the stored envelope; ComputedAt drives the freshness check.
type cachedGrid struct {
	ComputedAt time.Time `json:"computed_at"`
	Grid       WeekGrid  `json:"grid"`
}

// RedisGridCache is the Redis-backed GridCache. The clock is injected so
// freshness logic is testable without waiting on TTLs.
type RedisGridCache struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisGridCache constructs a RedisGridCache with the given TTL.
func NewRedisGridCache(client *redis.Client, ttl time.Duration) *RedisGridCache {
	return &RedisGridCache{client: client, ttl: ttl, now: time.Now}
}

func (c *RedisGridCache) Get(ctx context.Context, professionalID, anchorDate string) (*WeekGrid, bool) {
	val, err := c.client.Get(ctx, gridKey(professionalID, anchorDate)).Result()
	if err != nil {
		return nil, false
	}
	var entry cachedGrid
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return nil, false
	}
	if !sameDay(entry.ComputedAt, c.now()) {
		return nil, false
	}
	return &entry.Grid, true
}

func (c *RedisGridCache) Set(ctx context.Context, grid *WeekGrid) error {
	entry := cachedGrid{ComputedAt: c.now(), Grid: *grid}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, gridKey(grid.ProfessionalID, grid.AnchorDate), data, c.ttl).Err()
}

func (c *RedisGridCache) Invalidate(ctx context.Context, professionalID string) error {
	keys, err := c.client.Keys(ctx, gridKeyPrefix+professionalID+":*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// sameDay reports whether two instants fall on the same calendar day in the
// second instant's location.
func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
