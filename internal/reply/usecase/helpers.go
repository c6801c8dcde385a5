package usecase

import (
	"context"
	"errors"
	"fmt"

	"comment-srv/internal/model"
	"comment-srv/internal/notification"
	"comment-srv/internal/onboarding"
	"comment-srv/internal/reply"
	"comment-srv/internal/reply/repository"
)

func (uc *implUseCase) loadDraft(ctx context.Context, sc model.Scope) (reply.Draft, error) {
	d, err := uc.drafts.GetDraft(ctx, sc.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return reply.Draft{}, reply.ErrNoDraft
	}
	if err != nil {
		uc.l.Errorf(ctx, "reply.usecase.loadDraft: GetDraft failed: %v", err)
		return reply.Draft{}, fmt.Errorf("%w: %v", reply.ErrStoreFailed, err)
	}
	return d, nil
}

func (uc *implUseCase) saveDraft(ctx context.Context, sc model.Scope, d reply.Draft) error {
	if err := uc.drafts.SaveDraft(ctx, sc.UserID, d); err != nil {
		uc.l.Errorf(ctx, "reply.usecase.saveDraft: SaveDraft failed: %v", err)
		return fmt.Errorf("%w: %v", reply.ErrStoreFailed, err)
	}
	return nil
}

// selectedIDs reads the dashboard selection; it never trusts client-sent ids.
func (uc *implUseCase) selectedIDs(ctx context.Context, sc model.Scope) ([]string, error) {
	if uc.selection == nil {
		return nil, reply.ErrNoRecipients
	}
	ids, err := uc.selection.SelectedIDs(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "reply.usecase.selectedIDs: SelectedIDs failed: %v", err)
		return nil, fmt.Errorf("%w: %v", reply.ErrStoreFailed, err)
	}
	return ids, nil
}

// mutate loads the draft, applies fn and persists the result.
func (uc *implUseCase) mutate(ctx context.Context, sc model.Scope, fn func(d *reply.Draft) error) (reply.Draft, error) {
	d, err := uc.loadDraft(ctx, sc)
	if err != nil {
		return reply.Draft{}, err
	}
	if err := fn(&d); err != nil {
		return reply.Draft{}, err
	}
	if err := uc.saveDraft(ctx, sc, d); err != nil {
		return reply.Draft{}, err
	}
	return d, nil
}

// profile is best effort: a missing profile only costs personalisation.
func (uc *implUseCase) profile(ctx context.Context, sc model.Scope) model.Profile {
	p, err := uc.onboardingUC.GetProgress(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "reply.usecase.profile: GetProgress failed: %v", err)
		return model.Profile{UserID: sc.UserID}
	}
	return p.Profile
}

func ownerAuthor(p model.Profile) (string, string) {
	name := p.Name
	if name == "" {
		name = reply.OwnerFallbackName
	}
	avatar := ""
	if !onboarding.IsAvatarObject(p.Avatar) {
		avatar = p.Avatar
	}
	return name, avatar
}

func (uc *implUseCase) notify(ctx context.Context, sc model.Scope, in notification.PushInput) model.Toast {
	t, err := uc.notificationUC.Push(ctx, sc, in)
	if err != nil {
		uc.l.Warnf(ctx, "reply.usecase.notify: Push failed: %v", err)
	}
	return t
}
