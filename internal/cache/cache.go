// Package cache stores serialized analysis results in Redis, keyed by
// a fingerprint of the posting content and URL.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Jeffawe/JobScanner/internal/types"
)

// DefaultTTL is how long a cached analysis result stays valid.
const DefaultTTL = 3600 * time.Second

const keyPrefix = "job_analysis:"

// Cache wraps a Redis client for analysis result storage.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis using a redis:// URL.
func New(redisURL string) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return &Cache{client: redis.NewClient(opts), ttl: DefaultTTL}, nil
}

// Key fingerprints a (url, content) pair into a cache key.
func Key(content, url string) string {
	sum := md5.Sum([]byte(url + ":" + content))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached result for a key, or (nil, nil) on a miss.
func (c *Cache) Get(ctx context.Context, key string) (*types.JobAnalysisResult, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached result: %w", err)
	}

	var result types.JobAnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached result: %w", err)
	}
	return &result, nil
}

// Set stores an analysis result under the key with the cache TTL.
func (c *Cache) Set(ctx context.Context, key string, result *types.JobAnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache result: %w", err)
	}
	return nil
}

// Ping verifies the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
