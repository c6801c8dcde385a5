package usecase

import (
	"context"
	"errors"
	"fmt"

	"comment-srv/internal/model"
	"comment-srv/internal/notification"
	"comment-srv/internal/reply"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Submit - Publish one dispatch per recipient. A failed fan-out restores the pre-submit draft.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope) (reply.SubmitOutput, error) {
	token, err := uc.drafts.AcquireSubmitLock(ctx, sc.UserID, uc.cfg.SubmitLockTTL)
	if err != nil {
		return reply.SubmitOutput{}, fmt.Errorf("%w: %v", reply.ErrStoreFailed, err)
	}
	if token == "" {
		return reply.SubmitOutput{}, reply.ErrAlreadySubmitting
	}
	defer func() {
		if err := uc.drafts.ReleaseSubmitLock(context.WithoutCancel(ctx), sc.UserID, token); err != nil {
			uc.l.Warnf(ctx, "reply.usecase.Submit: ReleaseSubmitLock failed: %v", err)
		}
	}()

	d, err := uc.loadDraft(ctx, sc)
	if err != nil {
		return reply.SubmitOutput{}, err
	}
	if d.FromSelection && d.Stage != reply.StageSubmitting {
		ids, err := uc.selectedIDs(ctx, sc)
		if err != nil {
			return reply.SubmitOutput{}, err
		}
		if len(ids) == 0 {
			return reply.SubmitOutput{}, reply.ErrNoRecipients
		}
		d.Recipients = ids
	}
	if d.SubmissionID == "" {
		d.SubmissionID = uuid.NewString()
	}
	if err := d.BeginSubmit(); err != nil {
		return reply.SubmitOutput{}, err
	}
	if err := uc.saveDraft(ctx, sc, d); err != nil {
		return reply.SubmitOutput{}, err
	}

	if err := uc.dispatch(ctx, sc, d); err != nil {
		uc.l.Errorf(ctx, "reply.usecase.Submit: dispatch failed: %v", err)
		uc.restore(context.WithoutCancel(ctx), sc, d)
		uc.notify(ctx, sc, notification.PushInput{
			Title:       "Reply Failed",
			Description: "Your reply could not be sent. Please try again.",
			Variant:     model.ToastDestructive,
		})
		return reply.SubmitOutput{}, fmt.Errorf("%w: %v", reply.ErrDispatchFailed, err)
	}

	if err := uc.drafts.DeleteDraft(ctx, sc.UserID); err != nil {
		uc.l.Warnf(ctx, "reply.usecase.Submit: DeleteDraft failed: %v", err)
	}

	n := len(d.Recipients)
	in := notification.PushInput{
		Title:       "Reply Sent",
		Description: fmt.Sprintf("Your reply to %s has been sent.", d.AuthorName),
		Variant:     model.ToastDefault,
	}
	if d.Bulk {
		in.Title = "Bulk Reply Sent"
		in.Description = fmt.Sprintf("Your reply has been sent to %d recipients.", n)
	}
	return reply.SubmitOutput{Sent: n, Toast: uc.notify(ctx, sc, in)}, nil
}

// restore puts the pre-submit draft back unless the composer was cancelled meanwhile.
func (uc *implUseCase) restore(ctx context.Context, sc model.Scope, d reply.Draft) {
	cur, err := uc.loadDraft(ctx, sc)
	if errors.Is(err, reply.ErrNoDraft) {
		uc.l.Infof(ctx, "reply.usecase.restore: draft cancelled during submit")
		return
	}
	if err != nil {
		return
	}
	if cur.Stage != reply.StageSubmitting || cur.SubmissionID != d.SubmissionID {
		return
	}
	d.FailSubmit()
	if err := uc.saveDraft(ctx, sc, d); err != nil {
		uc.l.Errorf(ctx, "reply.usecase.restore: SaveDraft failed: %v", err)
	}
}

func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, d reply.Draft) error {
	name, avatar := ownerAuthor(uc.profile(ctx, sc))
	aiGenerated := d.PreSubmit != nil && !d.PreSubmit.Edited()
	sentAt := uc.now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reply.MaxParallelDispatch)
	for _, id := range d.Recipients {
		msg := reply.Dispatch{
			ReplyID:       d.ReplyID(id),
			CommentID:     id,
			UserID:        sc.UserID,
			Text:          d.Buffer,
			AuthorName:    name,
			AuthorAvatar:  avatar,
			IsAIGenerated: aiGenerated,
			SentAt:        sentAt,
		}
		g.Go(func() error {
			return uc.producer.PublishDispatch(gctx, msg)
		})
	}
	return g.Wait()
}
