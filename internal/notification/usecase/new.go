package usecase

import (
	"time"

	"comment-srv/internal/notification"
	"comment-srv/internal/notification/repository"
	"comment-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.Repository
	publisher notification.Publisher
	l         log.Logger
	ttl       time.Duration
	now       func() time.Time
}

// New - publisher may be nil when no real-time broker is configured.
func New(repo repository.Repository, publisher notification.Publisher, l log.Logger, ttl time.Duration) notification.UseCase {
	if ttl <= 0 {
		ttl = notification.DefaultTTL
	}
	return &implUseCase{
		repo:      repo,
		publisher: publisher,
		l:         l,
		ttl:       ttl,
		now:       time.Now,
	}
}
