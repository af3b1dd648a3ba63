package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/workroster/workroster-api/pkg/config"
)

const (
	startupPingTimeout = 3 * time.Second
	dialTimeout        = 2 * time.Second
	commandTimeout     = 500 * time.Millisecond
)

// NewRedis connects to Redis and verifies the connection with a ping.
// Command timeouts stay short: cached reads fall back to Postgres, so a
// slow Redis must not stall request handling.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  commandTimeout,
		WriteTimeout: commandTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
