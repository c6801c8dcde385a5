package redis

import (
	"time"

	"comment-srv/internal/dashboard"
	"comment-srv/internal/dashboard/repository"
	"comment-srv/pkg/log"
	pkgRedis "comment-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Sessions are JSON blobs refreshed on every save.
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.Repository {
	if ttl <= 0 {
		ttl = dashboard.DefaultSessionTTL
	}
	return &implRepository{redis: redis, l: l, ttl: ttl}
}
