package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"comment-srv/config"
	"comment-srv/pkg/redis"
)

const (
	pingAttempts = 3
	pingBackoff  = 500 * time.Millisecond
)

var (
	client redis.IRedis
	mu     sync.Mutex
)

// Connect returns the shared Redis client, dialing and pinging it on first use.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return client, nil
	}

	c, err := redis.NewRedis(redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	if err := pingWithRetry(ctx, c); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis %s:%d unreachable: %w", cfg.Host, cfg.Port, err)
	}

	client = c
	return client, nil
}

func pingWithRetry(ctx context.Context, c redis.IRedis) error {
	var err error
	for i := 0; i < pingAttempts; i++ {
		if err = c.Ping(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pingBackoff * time.Duration(i+1)):
		}
	}
	return err
}

// Disconnect closes the shared client.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
