package repository

import (
	"context"

	"comment-srv/internal/dashboard"
)

//go:generate mockery --name Repository
type Repository interface {
	// GetSession returns ErrNotFound when the user has no stored session.
	GetSession(ctx context.Context, userID string) (dashboard.Session, error)
	SaveSession(ctx context.Context, userID string, s dashboard.Session) error
}
