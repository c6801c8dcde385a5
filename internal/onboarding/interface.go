package onboarding

import (
	"context"

	"comment-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetProgress(ctx context.Context, sc model.Scope) (Progress, error)
	SaveProfile(ctx context.Context, sc model.Scope, input SaveProfileInput) (Progress, error)
	UploadAvatar(ctx context.Context, sc model.Scope, input UploadAvatarInput) (Progress, error)
	TogglePlatform(ctx context.Context, sc model.Scope, input TogglePlatformInput) (Progress, error)
	Continue(ctx context.Context, sc model.Scope) (Progress, error)
}
