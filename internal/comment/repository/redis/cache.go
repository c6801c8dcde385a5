package redis

import (
	"context"
	"fmt"

	"comment-srv/internal/comment/repository"
	"comment-srv/internal/model"
)

const Prefix = "comment:store:"

func storeKey(userID string) string {
	return fmt.Sprintf("%s%s", Prefix, userID)
}

func (r *implCacheRepository) GetStore(ctx context.Context, userID string) ([]model.Comment, error) {
	var comments []model.Comment
	found, err := r.redis.GetJSON(ctx, storeKey(userID), &comments)
	if err != nil {
		r.l.Errorf(ctx, "comment.repository.redis.GetStore: %v", err)
		return nil, err
	}
	if !found {
		return nil, repository.ErrCacheMiss
	}
	return comments, nil
}

func (r *implCacheRepository) SaveStore(ctx context.Context, userID string, comments []model.Comment) error {
	if err := r.redis.SetJSON(ctx, storeKey(userID), comments, r.ttl); err != nil {
		r.l.Errorf(ctx, "comment.repository.redis.SaveStore: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) InvalidateStore(ctx context.Context, userID string) error {
	if err := r.redis.Delete(ctx, storeKey(userID)); err != nil {
		r.l.Errorf(ctx, "comment.repository.redis.InvalidateStore: %v", err)
		return err
	}
	return nil
}
