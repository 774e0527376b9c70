package redis

import (
	"context"
	"fmt"

	"mobi-voucher-gateway/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient creates the Redis client shared by the session store and the
// rate-limit store, and verifies connectivity before the server starts
// accepting wizard traffic. Redis is the only stateful backend: it holds
// the TTL'd session blobs and the fixed-window rate-limit counters, both
// of which are safe to lose (an expired session is the designed teardown
// path for an abandoned wizard).
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:       cfg.Addr(),
		Password:   cfg.Password,
		DB:         cfg.DB,
		ClientName: "mobi-voucher-gateway",
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis connection established")

	return client, nil
}
