// internal/common/database/redis.go
// Redis connection for the photo attribute cache

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClientFromURL connects using a redis:// URL and verifies the
// connection with a bounded ping. Redis backs only the attribute cache, so
// callers treat a failure here as "run without caching" rather than fatal.
func NewRedisClientFromURL(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
