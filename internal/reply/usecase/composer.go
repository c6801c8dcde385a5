package usecase

import (
	"context"
	"errors"
	"fmt"

	"comment-srv/internal/model"
	"comment-srv/internal/reply"
)

// Open - Start a draft for one comment or for the selection
func (uc *implUseCase) Open(ctx context.Context, sc model.Scope, input reply.OpenInput) (reply.Draft, error) {
	ids := input.CommentIDs
	if input.FromSelection {
		var err error
		if ids, err = uc.selectedIDs(ctx, sc); err != nil {
			return reply.Draft{}, err
		}
	}
	d := reply.NewDraft(ids, input.FromSelection, "")
	if len(d.Recipients) == 0 {
		return reply.Draft{}, reply.ErrNoRecipients
	}

	cur, err := uc.loadDraft(ctx, sc)
	switch {
	case err == nil && cur.Stage == reply.StageSubmitting:
		return reply.Draft{}, reply.ErrAlreadySubmitting
	case err != nil && !errors.Is(err, reply.ErrNoDraft):
		return reply.Draft{}, err
	}

	if !d.Bulk {
		c, err := uc.commentUC.Detail(ctx, sc, d.Recipients[0])
		if err != nil {
			uc.l.Warnf(ctx, "reply.usecase.Open: Detail failed: %v", err)
			return reply.Draft{}, err
		}
		d.AuthorName = c.Author.Name
	}

	if err := uc.saveDraft(ctx, sc, d); err != nil {
		return reply.Draft{}, err
	}
	return d, nil
}

// Get - Current draft, ErrNoDraft when the composer is closed
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (reply.Draft, error) {
	return uc.loadDraft(ctx, sc)
}

func (uc *implUseCase) ChangeIntent(ctx context.Context, sc model.Scope, intent reply.Intent) (reply.Draft, error) {
	return uc.mutate(ctx, sc, func(d *reply.Draft) error { return d.ChangeIntent(intent) })
}

func (uc *implUseCase) SelectSuggestion(ctx context.Context, sc model.Scope, idx int) (reply.Draft, error) {
	return uc.mutate(ctx, sc, func(d *reply.Draft) error { return d.SelectSuggestion(idx) })
}

func (uc *implUseCase) Edit(ctx context.Context, sc model.Scope, text string) (reply.Draft, error) {
	return uc.mutate(ctx, sc, func(d *reply.Draft) error { return d.Edit(text) })
}

func (uc *implUseCase) ApplyTool(ctx context.Context, sc model.Scope, tool reply.Tool) (reply.Draft, error) {
	return uc.mutate(ctx, sc, func(d *reply.Draft) error { return d.ApplyTool(tool) })
}

// Cancel - Close the composer from any stage
func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope) error {
	if err := uc.drafts.DeleteDraft(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "reply.usecase.Cancel: DeleteDraft failed: %v", err)
		return fmt.Errorf("%w: %v", reply.ErrStoreFailed, err)
	}
	return nil
}
