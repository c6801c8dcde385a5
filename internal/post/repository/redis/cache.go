package redis

import (
	"context"
	"fmt"

	"comment-srv/internal/model"
	"comment-srv/internal/post/repository"
)

const Prefix = "post:"

func postKey(userID, id string) string {
	return fmt.Sprintf("%s%s:%s", Prefix, userID, id)
}

func (r *implCacheRepository) GetPost(ctx context.Context, userID, id string) (model.Post, error) {
	var p model.Post
	found, err := r.redis.GetJSON(ctx, postKey(userID, id), &p)
	if err != nil {
		r.l.Errorf(ctx, "post.repository.redis.GetPost: %v", err)
		return model.Post{}, err
	}
	if !found {
		return model.Post{}, repository.ErrCacheMiss
	}
	return p, nil
}

func (r *implCacheRepository) SavePost(ctx context.Context, p model.Post) error {
	if err := r.redis.SetJSON(ctx, postKey(p.UserID, p.ID), p, r.ttl); err != nil {
		r.l.Errorf(ctx, "post.repository.redis.SavePost: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) DeletePosts(ctx context.Context, userID string, ids []string) error {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, postKey(userID, id))
	}
	return r.redis.Delete(ctx, keys...)
}
