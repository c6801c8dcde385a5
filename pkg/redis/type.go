package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultConnectTimeout = 5 * time.Second
	defaultPoolSize       = 20
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
)

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	// PoolSize defaults to defaultPoolSize when zero.
	PoolSize int
}

type redisImpl struct {
	client *goredis.Client
}
