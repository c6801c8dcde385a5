package usecase

import (
	"context"
	"errors"
	"fmt"

	"comment-srv/internal/dashboard"
	"comment-srv/internal/dashboard/repository"
	"comment-srv/internal/model"
	"comment-srv/internal/reply"
)

// load returns a fresh session for users who have none stored.
func (uc *implUseCase) load(ctx context.Context, sc model.Scope) (dashboard.Session, error) {
	s, err := uc.repo.GetSession(ctx, sc.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return dashboard.NewSession(), nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.load: GetSession failed: %v", err)
		return dashboard.Session{}, fmt.Errorf("%w: %v", dashboard.ErrStoreFailed, err)
	}
	return s, nil
}

func (uc *implUseCase) save(ctx context.Context, sc model.Scope, s dashboard.Session) (dashboard.Session, error) {
	if err := uc.repo.SaveSession(ctx, sc.UserID, s); err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.save: SaveSession failed: %v", err)
		return dashboard.Session{}, fmt.Errorf("%w: %v", dashboard.ErrStoreFailed, err)
	}
	s.ComposerOpen = uc.composerOpen(ctx, sc)
	return s, nil
}

// composerOpen treats an unreadable draft as closed.
func (uc *implUseCase) composerOpen(ctx context.Context, sc model.Scope) bool {
	d, err := uc.replyUC.Get(ctx, sc)
	if errors.Is(err, reply.ErrNoDraft) {
		return false
	}
	if err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.composerOpen: reply Get failed: %v", err)
		return false
	}
	return d.Stage != reply.StageClosed
}

// withCriteria stores new criteria and drops a cursor that no longer fits the feed.
// The selection is left as is.
func (uc *implUseCase) withCriteria(ctx context.Context, sc model.Scope, s dashboard.Session, criteria model.FilterCriteria) (dashboard.Session, error) {
	visible, err := uc.commentUC.VisibleIDs(ctx, sc, criteria)
	if err != nil {
		return dashboard.Session{}, err
	}
	s.Criteria = criteria
	s.Cursor = dashboard.ClampCursor(s.Cursor, len(visible))
	return uc.save(ctx, sc, s)
}
