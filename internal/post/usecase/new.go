package usecase

import (
	"comment-srv/internal/post"
	"comment-srv/internal/post/repository"
	"comment-srv/pkg/log"
)

type implUseCase struct {
	repo  repository.PostgresRepository
	cache repository.CacheRepository
	l     log.Logger
}

// New - Factory
func New(repo repository.PostgresRepository, cache repository.CacheRepository, l log.Logger) post.UseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
