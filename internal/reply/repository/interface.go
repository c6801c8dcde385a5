package repository

import (
	"context"
	"time"

	"comment-srv/internal/model"
	"comment-srv/internal/reply"
)

//go:generate mockery --name DraftRepository
type DraftRepository interface {
	GetDraft(ctx context.Context, userID string) (reply.Draft, error)
	SaveDraft(ctx context.Context, userID string, d reply.Draft) error
	DeleteDraft(ctx context.Context, userID string) error
	// AcquireSubmitLock returns a token when the lock was taken and "" when it is held elsewhere.
	AcquireSubmitLock(ctx context.Context, userID string, ttl time.Duration) (string, error)
	ReleaseSubmitLock(ctx context.Context, userID, token string) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ListReplies(ctx context.Context, opt ListOptions) ([]model.Reply, error)
	// InsertReply is idempotent on the reply id; the comment counter moves only on a fresh insert.
	InsertReply(ctx context.Context, opt InsertOptions) (bool, error)
}
