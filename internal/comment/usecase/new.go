package usecase

import (
	"comment-srv/internal/comment"
	"comment-srv/internal/comment/repository"
	"comment-srv/internal/notification"
	"comment-srv/internal/post"
	"comment-srv/pkg/log"
)

// Config - Feed sizing
type Config struct {
	FeedLimit     int // loadMore stops once this many comments are loaded
	PageSize      int
	PreviewLength int // runes shown before "..."
}

func DefaultConfig() Config {
	return Config{
		FeedLimit:     comment.DefaultFeedLimit,
		PageSize:      comment.DefaultPageSize,
		PreviewLength: comment.DefaultPreviewLength,
	}
}

type implUseCase struct {
	repo           repository.PostgresRepository
	cache          repository.CacheRepository
	notificationUC notification.UseCase
	postUC         post.UseCase
	l              log.Logger
	cfg            Config
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	notificationUC notification.UseCase,
	postUC post.UseCase,
	l log.Logger,
	cfg Config,
) comment.UseCase {
	def := DefaultConfig()
	if cfg.FeedLimit <= 0 {
		cfg.FeedLimit = def.FeedLimit
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = def.PageSize
	}
	if cfg.PreviewLength <= 0 {
		cfg.PreviewLength = def.PreviewLength
	}
	return &implUseCase{
		repo:           repo,
		cache:          cache,
		notificationUC: notificationUC,
		postUC:         postUC,
		l:              l,
		cfg:            cfg,
	}
}
