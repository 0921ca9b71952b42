// Package catalogcache keeps a short-lived Redis copy of the remote catalog
// so the station does not hammer the remote list endpoint on every lookup.
package catalogcache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hemolabs/labelstock/internal/models"
)

const catalogKey = "catalog:remote"

// Cache wraps a Redis client. A nil *Cache (or one built without a client)
// is valid and behaves as an always-miss cache, so callers never need to
// branch on whether Redis is configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get returns the cached catalog and whether it was present.
func (c *Cache) Get(ctx context.Context) ([]models.ProductFlat, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, catalogKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Println("catalog cache read failed:", err)
		return nil, false
	}

	var items []models.ProductFlat
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Println("catalog cache entry corrupt, discarding:", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return items, true
}

// Set stores the catalog for the configured TTL. Failures are logged and
// swallowed: the cache is an optimization, not a dependency.
func (c *Cache) Set(ctx context.Context, items []models.ProductFlat) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		log.Println("catalog cache encode failed:", err)
		return
	}
	if err := c.rdb.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		log.Println("catalog cache write failed:", err)
	}
}

// Invalidate drops the cached catalog. Called after local writes so the next
// catalog read reflects them as soon as the remote does.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		log.Println("catalog cache invalidate failed:", err)
	}
}
