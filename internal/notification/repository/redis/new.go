package redis

import (
	"comment-srv/internal/notification/repository"
	"comment-srv/pkg/log"
	pkgRedis "comment-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Toast queue backed by a sorted set of ids (score = expiry ms) and a hash of payloads.
func New(redis pkgRedis.IRedis, l log.Logger) repository.Repository {
	return &implRepository{redis: redis, l: l}
}
