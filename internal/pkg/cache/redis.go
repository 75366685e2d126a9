package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedisWithRetry pings addr until it answers or maxRetries is reached.
func ConnectRedisWithRetry(ctx context.Context, opts *redis.Options, maxRetries int, delay time.Duration) (*redis.Client, error) {
	rdb := redis.NewClient(opts)

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		if lastErr = rdb.Ping(ctx).Err(); lastErr == nil {
			slog.Info("connected to redis", "addr", opts.Addr)
			return rdb, nil
		}

		slog.Warn("redis ping failed", "attempt", i, "max_retries", maxRetries, "error", lastErr)
		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("failed to connect redis after %d retries: %w", maxRetries, lastErr)
}

// JSONCache stores JSON-encoded values in Redis. A nil client turns every call
// into a miss so callers do not need to branch on whether Redis is configured.
type JSONCache struct {
	rdb *redis.Client
}

func NewJSONCache(rdb *redis.Client) *JSONCache {
	return &JSONCache{rdb: rdb}
}

// Get decodes the value at key into dst and reports whether it was found.
func (c *JSONCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c == nil || c.rdb == nil {
		return false, nil
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *JSONCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *JSONCache) Delete(ctx context.Context, keys ...string) error {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
