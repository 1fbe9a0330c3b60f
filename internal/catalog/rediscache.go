package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"giftwell/internal/campaign/models"
)

const bundleCacheKey = "catalog:bundles"

// RedisCache stores the serialized bundle listing in Redis with a TTL so
// the inventory source is not hammered on every designer session.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) ([]models.Bundle, bool, error) {
	payload, err := c.client.Get(ctx, bundleCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read bundle cache: %w", err)
	}

	var bundles []models.Bundle
	if err := json.Unmarshal(payload, &bundles); err != nil {
		return nil, false, fmt.Errorf("decode bundle cache: %w", err)
	}
	return bundles, true, nil
}

func (c *RedisCache) Set(ctx context.Context, bundles []models.Bundle) error {
	payload, err := json.Marshal(bundles)
	if err != nil {
		return fmt.Errorf("encode bundle cache: %w", err)
	}
	if err := c.client.Set(ctx, bundleCacheKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("write bundle cache: %w", err)
	}
	return nil
}
