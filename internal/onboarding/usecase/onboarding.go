package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"comment-srv/internal/model"
	"comment-srv/internal/onboarding"
	"comment-srv/pkg/minio"

	"github.com/google/uuid"
)

// GetProgress - Profile, connections and current step
func (uc *implUseCase) GetProgress(ctx context.Context, sc model.Scope) (onboarding.Progress, error) {
	p, _, err := uc.loadProfile(ctx, sc.UserID)
	if err != nil {
		return onboarding.Progress{}, err
	}
	return uc.progress(ctx, p)
}

// SaveProfile - Persist the persona and move past profile setup
func (uc *implUseCase) SaveProfile(ctx context.Context, sc model.Scope, input onboarding.SaveProfileInput) (onboarding.Progress, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return onboarding.Progress{}, onboarding.ErrNameRequired
	}
	tone := input.Tone
	if tone == "" {
		tone = model.ToneFriendly
	}
	if !tone.IsValid() {
		return onboarding.Progress{}, onboarding.ErrInvalidTone
	}
	bias := input.ActionBias
	if bias == "" {
		bias = model.ActionBiasEngage
	}
	if !bias.IsValid() {
		return onboarding.Progress{}, onboarding.ErrInvalidActionBias
	}

	p, _, err := uc.loadProfile(ctx, sc.UserID)
	if err != nil {
		return onboarding.Progress{}, err
	}
	p.Name = name
	p.Persona = strings.TrimSpace(input.Persona)
	p.Tone = tone
	p.Signature = strings.TrimSpace(input.Signature)
	p.ActionBias = bias
	if p.Step == model.StepProfileSetup {
		p.Step = model.StepPlatformConnect
	}

	saved, err := uc.repo.UpsertProfile(ctx, p)
	if err != nil {
		uc.l.Errorf(ctx, "onboarding.usecase.SaveProfile: UpsertProfile failed: %v", err)
		return onboarding.Progress{}, fmt.Errorf("%w: %v", onboarding.ErrStoreFailed, err)
	}
	return uc.progress(ctx, saved)
}

// UploadAvatar - Store the image in object storage and point the profile at it
func (uc *implUseCase) UploadAvatar(ctx context.Context, sc model.Scope, input onboarding.UploadAvatarInput) (onboarding.Progress, error) {
	ext, ok := onboarding.AllowedAvatarTypes[input.ContentType]
	if !ok || input.Reader == nil || input.Size <= 0 || input.Size > minio.MaxFileSizeBytes {
		return onboarding.Progress{}, onboarding.ErrInvalidAvatar
	}

	objectName := onboarding.AvatarObjectName(sc.UserID, uuid.NewString(), ext)
	if _, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.cfg.AvatarBucket,
		ObjectName:   objectName,
		OriginalName: filepath.Base(input.Filename),
		Reader:       input.Reader,
		Size:         input.Size,
		ContentType:  input.ContentType,
		Metadata:     map[string]string{"user-id": sc.UserID},
	}); err != nil {
		uc.l.Errorf(ctx, "onboarding.usecase.UploadAvatar: UploadFile failed: %v", err)
		return onboarding.Progress{}, fmt.Errorf("%w: %v", onboarding.ErrStorageFailed, err)
	}

	p, _, err := uc.loadProfile(ctx, sc.UserID)
	if err != nil {
		return onboarding.Progress{}, err
	}
	previous := p.Avatar
	p.Avatar = objectName

	saved, err := uc.repo.UpsertProfile(ctx, p)
	if err != nil {
		uc.l.Errorf(ctx, "onboarding.usecase.UploadAvatar: UpsertProfile failed: %v", err)
		return onboarding.Progress{}, fmt.Errorf("%w: %v", onboarding.ErrStoreFailed, err)
	}

	if onboarding.IsAvatarObject(previous) {
		if err := uc.minio.DeleteFile(ctx, uc.cfg.AvatarBucket, previous); err != nil && !minio.IsNotFound(err) {
			uc.l.Warnf(ctx, "onboarding.usecase.UploadAvatar: DeleteFile %s failed: %v", previous, err)
		}
	}
	return uc.progress(ctx, saved)
}

// TogglePlatform - Connect or disconnect a platform account
func (uc *implUseCase) TogglePlatform(ctx context.Context, sc model.Scope, input onboarding.TogglePlatformInput) (onboarding.Progress, error) {
	if !input.Platform.IsValid() {
		return onboarding.Progress{}, onboarding.ErrInvalidPlatform
	}

	p, exists, err := uc.loadProfile(ctx, sc.UserID)
	if err != nil {
		return onboarding.Progress{}, err
	}
	if !exists || p.Step == model.StepProfileSetup {
		return onboarding.Progress{}, onboarding.ErrProfileIncomplete
	}

	conns, err := uc.loadConnections(ctx, sc.UserID)
	if err != nil {
		return onboarding.Progress{}, err
	}
	var current model.PlatformConnection
	for _, c := range conns {
		if c.Platform == input.Platform {
			current = c
		}
	}

	next := model.PlatformConnection{UserID: sc.UserID, Platform: input.Platform, Connected: !current.Connected}
	if next.Connected {
		now := uc.now()
		next.ConnectedAt = &now
		if input.AccessToken != "" {
			enc, err := uc.encrypter.Encrypt(input.AccessToken)
			if err != nil {
				uc.l.Errorf(ctx, "onboarding.usecase.TogglePlatform: Encrypt failed: %v", err)
				return onboarding.Progress{}, fmt.Errorf("%w: %v", onboarding.ErrStoreFailed, err)
			}
			next.AccessToken = enc
		}
	}

	if err := uc.repo.SetConnection(ctx, next); err != nil {
		uc.l.Errorf(ctx, "onboarding.usecase.TogglePlatform: SetConnection failed: %v", err)
		return onboarding.Progress{}, fmt.Errorf("%w: %v", onboarding.ErrStoreFailed, err)
	}
	return uc.progress(ctx, p)
}

// Continue - Advance one step. There is no way back.
func (uc *implUseCase) Continue(ctx context.Context, sc model.Scope) (onboarding.Progress, error) {
	p, exists, err := uc.loadProfile(ctx, sc.UserID)
	if err != nil {
		return onboarding.Progress{}, err
	}

	switch {
	case !exists || p.Step == model.StepProfileSetup:
		return onboarding.Progress{}, onboarding.ErrProfileIncomplete
	case p.Step == model.StepDashboard:
		return uc.progress(ctx, p)
	}

	prog, err := uc.progress(ctx, p)
	if err != nil {
		return onboarding.Progress{}, err
	}
	if prog.ConnectedCount() == 0 {
		return onboarding.Progress{}, onboarding.ErrNoPlatformConnected
	}

	p.Step = model.StepDashboard
	saved, err := uc.repo.UpsertProfile(ctx, p)
	if err != nil {
		uc.l.Errorf(ctx, "onboarding.usecase.Continue: UpsertProfile failed: %v", err)
		return onboarding.Progress{}, fmt.Errorf("%w: %v", onboarding.ErrStoreFailed, err)
	}
	prog.Profile = saved
	prog.Step = saved.Step
	return prog, nil
}
