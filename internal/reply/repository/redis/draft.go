package redis

import (
	"context"
	"time"

	"comment-srv/internal/reply"
	"comment-srv/internal/reply/repository"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	draftPrefix = "reply:draft:"
	lockPrefix  = "reply:submit_lock:"
)

// releaseScript deletes the lock only while it still holds the caller's token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

func draftKey(userID string) string { return draftPrefix + userID }
func lockKey(userID string) string  { return lockPrefix + userID }

func (r *implRepository) GetDraft(ctx context.Context, userID string) (reply.Draft, error) {
	var d reply.Draft
	found, err := r.redis.GetJSON(ctx, draftKey(userID), &d)
	if err != nil {
		r.l.Errorf(ctx, "reply.repository.redis.GetDraft: %v", err)
		return reply.Draft{}, err
	}
	if !found {
		return reply.Draft{}, repository.ErrNotFound
	}
	return d, nil
}

func (r *implRepository) SaveDraft(ctx context.Context, userID string, d reply.Draft) error {
	if err := r.redis.SetJSON(ctx, draftKey(userID), d, r.ttl); err != nil {
		r.l.Errorf(ctx, "reply.repository.redis.SaveDraft: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) DeleteDraft(ctx context.Context, userID string) error {
	return r.redis.Delete(ctx, draftKey(userID))
}

func (r *implRepository) AcquireSubmitLock(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	ok, err := r.redis.SetNX(ctx, lockKey(userID), token, ttl)
	if err != nil {
		r.l.Errorf(ctx, "reply.repository.redis.AcquireSubmitLock: %v", err)
		return "", err
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

func (r *implRepository) ReleaseSubmitLock(ctx context.Context, userID, token string) error {
	if err := releaseScript.Run(ctx, r.redis.GetClient(), []string{lockKey(userID)}, token).Err(); err != nil {
		r.l.Errorf(ctx, "reply.repository.redis.ReleaseSubmitLock: %v", err)
		return err
	}
	return nil
}
