package post

import (
	"context"

	"comment-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (PreviewOutput, error)
	Get(ctx context.Context, sc model.Scope, id string) (model.Post, error)
	Upsert(ctx context.Context, sc model.Scope, input UpsertInput) (int, error)
}
