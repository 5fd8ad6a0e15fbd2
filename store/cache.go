package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keeps computed result payloads in redis so repeated queries for the
// same pair don't rerun the search. The payload is opaque to the cache (the
// handler stores serialized JSON).
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache connects to the redis instance at addr. TTL <= 0 means entries
// never expire.
func NewCache(addr string, ttl time.Duration) *Cache {
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

func cacheKey(start, end string) string {
	return fmt.Sprintf("knightpaths:%s:%s", start, end)
}

// Get returns the cached payload for a pair, or ok=false on a miss.
func (c *Cache) Get(ctx context.Context, start, end string) ([]byte, bool, error) {
	val, err := c.rdb.Get(ctx, cacheKey(start, end)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

// Put stores the payload for a pair.
func (c *Cache) Put(ctx context.Context, start, end string, payload []byte) error {
	if err := c.rdb.Set(ctx, cacheKey(start, end), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Ping verifies the connection, used at server startup so a bad redis
// address fails fast instead of on the first request.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
