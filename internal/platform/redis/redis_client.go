// Package redis opens the shared go-redis client.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"student_portal/internal/platform/logger"
)

// Options selects the Redis server.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects and pings the server. A failed ping closes the client.
func NewRedisClient(ctx context.Context, opts Options) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Error().Err(err).Str("address", opts.Addr).Msg("redis connection failed")
		_ = rdb.Close()
		return nil, err
	}

	logger.Info().Str("address", opts.Addr).Msg("redis connection successful")
	return rdb, nil
}
