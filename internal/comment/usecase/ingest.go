package usecase

import (
	"context"
	"fmt"

	"comment-srv/internal/comment"
	"comment-srv/internal/comment/repository"
	"comment-srv/internal/model"
	"comment-srv/internal/post"

	"github.com/dustin/go-humanize/english"
	"github.com/google/uuid"
)

// Ingest - Load platform comments and their posts into the user's store
func (uc *implUseCase) Ingest(ctx context.Context, sc model.Scope, input comment.IngestInput) (comment.IngestOutput, error) {
	comments := make([]model.Comment, 0, len(input.Comments))
	for _, c := range input.Comments {
		text, err := stripHTML(c.Text)
		if err != nil {
			uc.l.Warnf(ctx, "comment.usecase.Ingest: stripHTML failed for %s: %v", c.ID, err)
			return comment.IngestOutput{}, fmt.Errorf("%w: %v", comment.ErrInvalidComment, err)
		}
		c.Text = text
		if err := validateComment(c); err != nil {
			return comment.IngestOutput{}, fmt.Errorf("%w: id=%q", err, c.ID)
		}
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		c.UserID = sc.UserID
		comments = append(comments, c)
	}

	var out comment.IngestOutput
	if len(input.Posts) > 0 {
		n, err := uc.postUC.Upsert(ctx, sc, post.UpsertInput{Posts: input.Posts})
		if err != nil {
			uc.l.Errorf(ctx, "comment.usecase.Ingest: post Upsert failed: %v", err)
			return comment.IngestOutput{}, err
		}
		out.Posts = n
	}

	if len(comments) > 0 {
		n, err := uc.repo.UpsertComments(ctx, repository.UpsertOptions{UserID: sc.UserID, Comments: comments})
		if err != nil {
			uc.l.Errorf(ctx, "comment.usecase.Ingest: UpsertComments failed: %v", err)
			return comment.IngestOutput{}, fmt.Errorf("%w: %v", comment.ErrStoreFailed, err)
		}
		out.Comments = n
	}

	uc.invalidate(ctx, sc)
	if out.Comments > 0 {
		uc.notify(ctx, sc, "New comments", english.Plural(out.Comments, "comment", "")+" added")
	}
	return out, nil
}
