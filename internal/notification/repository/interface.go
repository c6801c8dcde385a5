package repository

import (
	"context"
	"time"

	"comment-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// Save queues a toast until its ExpiresAt.
	Save(ctx context.Context, toast model.Toast) error
	// ListActive prunes toasts expired at now and returns the rest in push order.
	ListActive(ctx context.Context, userID string, now time.Time) ([]model.Toast, error)
	// Delete reports whether the toast existed.
	Delete(ctx context.Context, userID, id string) (bool, error)
}
