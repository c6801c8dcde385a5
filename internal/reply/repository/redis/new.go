package redis

import (
	"time"

	"comment-srv/internal/reply/repository"
	"comment-srv/pkg/log"
	pkgRedis "comment-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Composer drafts expire with the dashboard session.
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.DraftRepository {
	return &implRepository{redis: redis, l: l, ttl: ttl}
}
