// Package redis implements the pass and CMS repositories on a Redis backend.
// The service treats Redis as optional: when Connect fails at startup the
// caller swaps in the in-memory repositories instead of aborting.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultTimeout bounds every Redis round trip, the startup ping included.
const defaultTimeout = 5 * time.Second

// Config carries the connection settings for the Redis backend.
type Config struct {
	Addr string
	DB   int
}

// Connect opens a client against cfg.Addr and proves liveness with a ping
// before handing it out, so a dead backend is detected at startup rather
// than on the first user request.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
