package usecase

import (
	"context"

	"comment-srv/internal/comment"
	"comment-srv/internal/dashboard"
	"comment-srv/internal/model"
)

func (uc *implUseCase) ToggleSelection(ctx context.Context, sc model.Scope, commentID string) (dashboard.Session, error) {
	if commentID == "" {
		return dashboard.Session{}, comment.ErrNotFound
	}
	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.Session{}, err
	}
	s.Selection = s.Selection.Toggle(commentID)
	return uc.save(ctx, sc, s)
}

// ToggleSelectAll works on the comments visible under the current filters.
func (uc *implUseCase) ToggleSelectAll(ctx context.Context, sc model.Scope) (dashboard.Session, error) {
	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.Session{}, err
	}
	visible, err := uc.commentUC.VisibleIDs(ctx, sc, s.Criteria)
	if err != nil {
		return dashboard.Session{}, err
	}
	s.Selection = s.Selection.ToggleAll(visible)
	return uc.save(ctx, sc, s)
}

func (uc *implUseCase) ClearSelection(ctx context.Context, sc model.Scope) (dashboard.Session, error) {
	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.Session{}, err
	}
	s.Selection = s.Selection.Clear()
	return uc.save(ctx, sc, s)
}

// BulkAct applies action to every selected comment. The selection is kept when it fails.
func (uc *implUseCase) BulkAct(ctx context.Context, sc model.Scope, action comment.Action) (dashboard.BulkActOutput, error) {
	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.BulkActOutput{}, err
	}

	res, err := uc.commentUC.BulkAct(ctx, sc, comment.BulkActInput{IDs: s.Selection.IDs(), Action: action})
	if err != nil {
		return dashboard.BulkActOutput{}, err
	}

	// Archive and save never hide a comment, so the cursor stays valid.
	s.Selection = s.Selection.Clear()
	s, err = uc.save(ctx, sc, s)
	if err != nil {
		return dashboard.BulkActOutput{}, err
	}
	return dashboard.BulkActOutput{Result: res, Session: s}, nil
}
