package usecase

import (
	"context"

	"comment-srv/internal/dashboard"
	"comment-srv/internal/model"
	"comment-srv/internal/reply"
)

// Navigate - Arrow keys move the focus over the filtered feed, Enter opens the
// composer for the focused comment and Escape closes it.
func (uc *implUseCase) Navigate(ctx context.Context, sc model.Scope, key dashboard.Key) (dashboard.NavigateOutput, error) {
	if !key.IsValid() {
		return dashboard.NavigateOutput{}, dashboard.ErrInvalidKey
	}

	s, err := uc.load(ctx, sc)
	if err != nil {
		return dashboard.NavigateOutput{}, err
	}
	visible, err := uc.commentUC.VisibleIDs(ctx, sc, s.Criteria)
	if err != nil {
		return dashboard.NavigateOutput{}, err
	}

	s.Cursor = dashboard.MoveCursor(s.Cursor, len(visible), key)
	out := dashboard.NavigateOutput{Cursor: s.Cursor}
	if s.Cursor != dashboard.NoCursor {
		out.CommentID = visible[s.Cursor]
	}

	switch key {
	case dashboard.KeyEnter:
		if out.CommentID != "" {
			d, err := uc.replyUC.Open(ctx, sc, reply.OpenInput{CommentIDs: []string{out.CommentID}})
			if err != nil {
				return dashboard.NavigateOutput{}, err
			}
			out.Draft = &d
		}
	case dashboard.KeyEscape:
		if uc.composerOpen(ctx, sc) {
			if err := uc.replyUC.Cancel(ctx, sc); err != nil {
				return dashboard.NavigateOutput{}, err
			}
		}
	}

	s, err = uc.save(ctx, sc, s)
	if err != nil {
		return dashboard.NavigateOutput{}, err
	}
	out.ComposerOpen = s.ComposerOpen
	return out, nil
}
