package usecase

import (
	"context"
	"errors"
	"fmt"

	"comment-srv/internal/model"
	"comment-srv/internal/onboarding"
	"comment-srv/internal/onboarding/repository"
)

// newProfile is the state of a user who has not saved anything yet.
func newProfile(userID string) model.Profile {
	return model.Profile{
		UserID:     userID,
		Tone:       model.ToneFriendly,
		ActionBias: model.ActionBiasEngage,
		Step:       model.StepProfileSetup,
	}
}

func (uc *implUseCase) loadProfile(ctx context.Context, userID string) (model.Profile, bool, error) {
	p, err := uc.repo.GetProfile(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return newProfile(userID), false, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "onboarding.usecase.loadProfile: GetProfile failed: %v", err)
		return model.Profile{}, false, fmt.Errorf("%w: %v", onboarding.ErrStoreFailed, err)
	}
	return p, true, nil
}

func (uc *implUseCase) loadConnections(ctx context.Context, userID string) ([]model.PlatformConnection, error) {
	stored, err := uc.repo.ListConnections(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "onboarding.usecase.loadConnections: ListConnections failed: %v", err)
		return nil, fmt.Errorf("%w: %v", onboarding.ErrStoreFailed, err)
	}

	byPlatform := make(map[model.Platform]model.PlatformConnection, len(stored))
	for _, c := range stored {
		byPlatform[c.Platform] = c
	}
	out := make([]model.PlatformConnection, 0, len(model.Platforms))
	for _, p := range model.Platforms {
		c, ok := byPlatform[p]
		if !ok {
			c = model.PlatformConnection{UserID: userID, Platform: p}
		}
		out = append(out, c)
	}
	return out, nil
}

func (uc *implUseCase) progress(ctx context.Context, p model.Profile) (onboarding.Progress, error) {
	conns, err := uc.loadConnections(ctx, p.UserID)
	if err != nil {
		return onboarding.Progress{}, err
	}
	return onboarding.Progress{
		Profile:     p,
		AvatarURL:   uc.avatarURL(ctx, p.Avatar),
		Connections: conns,
		Step:        p.Step,
	}, nil
}

// avatarURL presigns stored avatars and passes external URLs through.
func (uc *implUseCase) avatarURL(ctx context.Context, avatar string) string {
	if !onboarding.IsAvatarObject(avatar) {
		return avatar
	}
	resp, err := uc.minio.PresignGet(ctx, uc.cfg.AvatarBucket, avatar, onboarding.AvatarURLExpiry)
	if err != nil {
		uc.l.Warnf(ctx, "onboarding.usecase.avatarURL: presign failed: %v", err)
		return ""
	}
	return resp.URL
}
