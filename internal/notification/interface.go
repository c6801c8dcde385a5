package notification

import (
	"context"

	"comment-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Push(ctx context.Context, sc model.Scope, input PushInput) (model.Toast, error)
	List(ctx context.Context, sc model.Scope) ([]model.Toast, error)
	Dismiss(ctx context.Context, sc model.Scope, id string) error
}

// Publisher fans toast events out to real-time clients.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishEvent(ctx context.Context, event Event) error
}
