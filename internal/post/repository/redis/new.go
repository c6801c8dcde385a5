package redis

import (
	"time"

	"comment-srv/internal/post/repository"
	"comment-srv/pkg/log"
	pkgRedis "comment-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
