package usecase

import (
	"context"
	"errors"
	"fmt"

	"comment-srv/internal/model"
	"comment-srv/internal/reply"
	"comment-srv/internal/reply/repository"
)

// ListThread - Replies under a comment, oldest first. An empty thread is valid.
func (uc *implUseCase) ListThread(ctx context.Context, sc model.Scope, commentID string) ([]model.Reply, error) {
	if _, err := uc.commentUC.Detail(ctx, sc, commentID); err != nil {
		return nil, err
	}

	replies, err := uc.repo.ListReplies(ctx, repository.ListOptions{UserID: sc.UserID, CommentID: commentID})
	if err != nil {
		uc.l.Errorf(ctx, "reply.usecase.ListThread: ListReplies failed: %v", err)
		return nil, fmt.Errorf("%w: %v", reply.ErrStoreFailed, err)
	}

	now := uc.now()
	for i := range replies {
		replies[i].Time, replies[i].TimeTooltip = reply.ThreadTime(replies[i].CreatedAt, now)
	}
	return replies, nil
}

// Deliver - Record a dispatched reply as an owner entry of the thread
func (uc *implUseCase) Deliver(ctx context.Context, input reply.DeliverInput) error {
	if input.ReplyID == "" || input.CommentID == "" || input.UserID == "" || input.Text == "" {
		return reply.ErrInvalidDelivery
	}
	createdAt := input.SentAt
	if createdAt.IsZero() {
		createdAt = uc.now()
	}

	inserted, err := uc.repo.InsertReply(ctx, repository.InsertOptions{
		UserID: input.UserID,
		Reply: model.Reply{
			ID:            input.ReplyID,
			CommentID:     input.CommentID,
			Author:        model.ReplyAuthor{Name: input.AuthorName, Avatar: input.AuthorAvatar, IsOwner: true},
			Text:          input.Text,
			IsAIGenerated: input.IsAIGenerated,
			CreatedAt:     createdAt,
		},
	})
	if errors.Is(err, repository.ErrCommentNotFound) {
		return fmt.Errorf("%w: comment %s", reply.ErrInvalidDelivery, input.CommentID)
	}
	if err != nil {
		uc.l.Errorf(ctx, "reply.usecase.Deliver: InsertReply failed: %v", err)
		return fmt.Errorf("%w: %v", reply.ErrStoreFailed, err)
	}
	if !inserted {
		uc.l.Infof(ctx, "reply.usecase.Deliver: reply %s already recorded", input.ReplyID)
	}
	return nil
}
