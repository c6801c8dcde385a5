package usecase

import (
	"context"
	"errors"
	"fmt"

	"comment-srv/internal/model"
	"comment-srv/internal/post"
	"comment-srv/internal/post/repository"

	"golang.org/x/sync/errgroup"
)

// Preview - The post behind the selected comment. A missing post is not an error.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input post.PreviewInput) (post.PreviewOutput, error) {
	if input.CommentID == "" {
		return post.PreviewOutput{Message: post.NoSelectionMessage}, nil
	}

	opt := repository.CommentOptions{UserID: sc.UserID, CommentID: input.CommentID}
	var (
		p       model.Post
		found   bool
		replies int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		postID, err := uc.repo.CommentPostID(gctx, opt)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		p, err = uc.Get(gctx, sc, postID)
		if errors.Is(err, post.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	g.Go(func() error {
		n, err := uc.repo.CountReplies(gctx, opt)
		if err != nil {
			return err
		}
		replies = n
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "post.usecase.Preview: %v", err)
		return post.PreviewOutput{}, fmt.Errorf("%w: %v", post.ErrLoadFailed, err)
	}

	if !found {
		return post.PreviewOutput{ReplyCount: replies}, nil
	}
	info := model.PlatformInfo(p.Platform)
	return post.PreviewOutput{
		Found:         true,
		Post:          p,
		PlatformLabel: info.Label,
		PlatformIcon:  info.Icon,
		ReplyCount:    replies,
	}, nil
}
