package repository

import (
	"context"

	"comment-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	GetPost(ctx context.Context, opt GetOptions) (model.Post, error)
	// CommentPostID returns the post id of a live comment owned by the user.
	CommentPostID(ctx context.Context, opt CommentOptions) (string, error)
	CountReplies(ctx context.Context, opt CommentOptions) (int, error)
	UpsertPosts(ctx context.Context, opt UpsertOptions) (int, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetPost(ctx context.Context, userID, id string) (model.Post, error)
	SavePost(ctx context.Context, post model.Post) error
	DeletePosts(ctx context.Context, userID string, ids []string) error
}
