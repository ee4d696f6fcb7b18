package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"metalprices-service/internal/application"
)

// Cache keeps the most recent live view per date for a short TTL so
// bursts of latest calls do not hammer the upstream sources.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

var _ application.SnapshotCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{Client: client, TTL: ttl}
}

func cacheKey(date string) string { return "latest:" + date }

func (c *Cache) Get(ctx context.Context, date string) (application.LatestResult, bool, error) {
	b, err := c.Client.Get(ctx, cacheKey(date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return application.LatestResult{}, false, nil
	}
	if err != nil {
		return application.LatestResult{}, false, err
	}
	var out application.LatestResult
	if err := json.Unmarshal(b, &out); err != nil {
		return application.LatestResult{}, false, err
	}
	return out, true, nil
}

func (c *Cache) Set(ctx context.Context, date string, v application.LatestResult) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, cacheKey(date), b, c.TTL).Err()
}
