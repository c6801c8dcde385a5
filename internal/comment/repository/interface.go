package repository

import (
	"context"

	"comment-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ListComments(ctx context.Context, opt ListOptions) ([]model.Comment, error)
	GetComment(ctx context.Context, opt GetOptions) (model.Comment, error)
	UpdateFlags(ctx context.Context, opt UpdateFlagsOptions) (int, error)
	SoftDelete(ctx context.Context, opt SoftDeleteOptions) (int, error)
	UpsertComments(ctx context.Context, opt UpsertOptions) (int, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetStore(ctx context.Context, userID string) ([]model.Comment, error)
	SaveStore(ctx context.Context, userID string, comments []model.Comment) error
	InvalidateStore(ctx context.Context, userID string) error
}
