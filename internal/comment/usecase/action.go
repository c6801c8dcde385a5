package usecase

import (
	"context"
	"fmt"

	"comment-srv/internal/comment"
	"comment-srv/internal/comment/repository"
	"comment-srv/internal/model"
	"comment-srv/internal/notification"
)

// Act - Apply a single-comment action from the feed menu
func (uc *implUseCase) Act(ctx context.Context, sc model.Scope, input comment.ActInput) (comment.ActOutput, error) {
	title, ok := actionTitles[input.Action]
	if !ok {
		return comment.ActOutput{}, comment.ErrInvalidAction
	}

	c, err := uc.Detail(ctx, sc, input.CommentID)
	if err != nil {
		return comment.ActOutput{}, err
	}

	ids := []string{c.ID}
	if input.Action == comment.ActionDelete {
		_, err = uc.repo.SoftDelete(ctx, repository.SoftDeleteOptions{UserID: sc.UserID, IDs: ids})
	} else {
		_, err = uc.repo.UpdateFlags(ctx, repository.UpdateFlagsOptions{
			UserID: sc.UserID, IDs: ids, Flag: actionFlags[input.Action], Value: true,
		})
	}
	if err != nil {
		uc.l.Errorf(ctx, "comment.usecase.Act: %s failed: %v", input.Action, err)
		return comment.ActOutput{}, fmt.Errorf("%w: %v", comment.ErrStoreFailed, err)
	}
	uc.invalidate(ctx, sc)

	switch input.Action {
	case comment.ActionFlag:
		c.Flagged = true
	case comment.ActionArchive:
		c.Archived = true
	case comment.ActionSave:
		c.Saved = true
	case comment.ActionImportant:
		c.Important = true
	}

	toast := uc.notify(ctx, sc, title, "Comment ID: "+shortID(c.ID))
	return comment.ActOutput{Comment: c, Toast: toast}, nil
}

// BulkAct - Archive or save a set of comments in one statement
func (uc *implUseCase) BulkAct(ctx context.Context, sc model.Scope, input comment.BulkActInput) (comment.BulkActOutput, error) {
	if len(input.IDs) == 0 {
		return comment.BulkActOutput{}, comment.ErrEmptySelection
	}

	var title, desc string
	switch input.Action {
	case comment.ActionArchive:
		title = "Comments Archived"
		desc = fmt.Sprintf("%d comments have been archived.", len(input.IDs))
	case comment.ActionSave:
		title = "Comments Saved"
		desc = fmt.Sprintf("%d comments have been saved for later.", len(input.IDs))
	default:
		return comment.BulkActOutput{}, comment.ErrInvalidAction
	}

	n, err := uc.repo.UpdateFlags(ctx, repository.UpdateFlagsOptions{
		UserID: sc.UserID, IDs: input.IDs, Flag: actionFlags[input.Action], Value: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "comment.usecase.BulkAct: UpdateFlags failed: %v", err)
		return comment.BulkActOutput{}, fmt.Errorf("%w: %v", comment.ErrStoreFailed, err)
	}
	uc.invalidate(ctx, sc)

	return comment.BulkActOutput{Affected: n, Toast: uc.notify(ctx, sc, title, desc)}, nil
}

// notify pushes a toast; a failing sink never fails the action.
func (uc *implUseCase) notify(ctx context.Context, sc model.Scope, title, desc string) model.Toast {
	t, err := uc.notificationUC.Push(ctx, sc, notification.PushInput{
		Title:       title,
		Description: desc,
		Variant:     model.ToastDefault,
	})
	if err != nil {
		uc.l.Warnf(ctx, "comment.usecase.notify: Push failed: %v", err)
	}
	return t
}
