package repository

import (
	"context"

	"comment-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	GetProfile(ctx context.Context, userID string) (model.Profile, error)
	UpsertProfile(ctx context.Context, profile model.Profile) (model.Profile, error)
	ListConnections(ctx context.Context, userID string) ([]model.PlatformConnection, error)
	SetConnection(ctx context.Context, conn model.PlatformConnection) error
}
