package usecase

import (
	"context"
	"errors"
	"fmt"

	"comment-srv/internal/model"
	"comment-srv/internal/post"
	"comment-srv/internal/post/repository"
)

// Get - A single post, cache first
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Post, error) {
	p, err := uc.cache.GetPost(ctx, sc.UserID, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		uc.l.Warnf(ctx, "post.usecase.Get: cache read failed: %v", err)
	}

	p, err = uc.repo.GetPost(ctx, repository.GetOptions{UserID: sc.UserID, ID: id})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Post{}, post.ErrNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.Get: GetPost failed: %v", err)
		return model.Post{}, fmt.Errorf("%w: %v", post.ErrLoadFailed, err)
	}

	if err := uc.cache.SavePost(ctx, p); err != nil {
		uc.l.Warnf(ctx, "post.usecase.Get: cache write failed: %v", err)
	}
	return p, nil
}

// Upsert - Store posts that arrive with ingested comments
func (uc *implUseCase) Upsert(ctx context.Context, sc model.Scope, input post.UpsertInput) (int, error) {
	if len(input.Posts) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(input.Posts))
	for _, p := range input.Posts {
		if p.ID == "" || !p.Platform.IsValid() || p.Likes < 0 || p.Comments < 0 || p.Views < 0 {
			return 0, fmt.Errorf("%w: id=%q", post.ErrInvalidPost, p.ID)
		}
		ids = append(ids, p.ID)
	}

	n, err := uc.repo.UpsertPosts(ctx, repository.UpsertOptions{UserID: sc.UserID, Posts: input.Posts})
	if err != nil {
		uc.l.Errorf(ctx, "post.usecase.Upsert: UpsertPosts failed: %v", err)
		return 0, fmt.Errorf("%w: %v", post.ErrUpsertFailed, err)
	}

	if err := uc.cache.DeletePosts(ctx, sc.UserID, ids); err != nil {
		uc.l.Warnf(ctx, "post.usecase.Upsert: cache invalidation failed: %v", err)
	}
	return n, nil
}
