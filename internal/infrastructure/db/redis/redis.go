package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ar-top/map-api/internal/infrastructure/config"
)

const connectTimeout = 5 * time.Second

// Connect dials Redis from the loaded configuration and verifies it with a
// ping. Redis only backs the login limiter here, but a misconfigured address
// should still surface at startup rather than as per-login limiter errors.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
