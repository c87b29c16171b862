package cache

import (
	"context"
	"encoding/json"
	"time"

	"hotel-console/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// ListCache keeps short-lived copies of upstream directory lists so the
// dashboard tables do not hammer the HMS API on every refresh. Callers
// treat a nil *ListCache as "caching disabled".
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListCache(cfg utils.RedisConfig) *ListCache {
	return &ListCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl: time.Duration(cfg.ListTTLSeconds) * time.Second,
	}
}

func (c *ListCache) Get(ctx context.Context, key string, out any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *ListCache) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}
