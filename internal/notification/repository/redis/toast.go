package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"comment-srv/internal/model"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyIndexPrefix   = "notification:toasts:"
	keyPayloadPrefix = "notification:toast:"
	keySeqPrefix     = "notification:toastseq:"
	// keyGrace keeps the keys alive slightly past the newest expiry.
	keyGrace = time.Minute
)

func indexKey(userID string) string   { return keyIndexPrefix + userID }
func payloadKey(userID string) string { return keyPayloadPrefix + userID }
func seqKey(userID string) string     { return keySeqPrefix + userID }

// storedToast carries the push sequence; CreatedAt alone ties within a millisecond.
type storedToast struct {
	Seq   int64       `json:"seq"`
	Toast model.Toast `json:"toast"`
}

func (r *implRepository) Save(ctx context.Context, toast model.Toast) error {
	client := r.redis.GetClient()
	seq, err := client.Incr(ctx, seqKey(toast.UserID)).Result()
	if err != nil {
		return fmt.Errorf("Save.Incr: %w", err)
	}
	body, err := json.Marshal(storedToast{Seq: seq, Toast: toast})
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	ttl := time.Until(toast.ExpiresAt) + keyGrace
	pipe := client.TxPipeline()
	pipe.ZAdd(ctx, indexKey(toast.UserID), goredis.Z{Score: float64(toast.ExpiresAt.UnixMilli()), Member: toast.ID})
	pipe.HSet(ctx, payloadKey(toast.UserID), toast.ID, body)
	pipe.Expire(ctx, indexKey(toast.UserID), ttl)
	pipe.Expire(ctx, payloadKey(toast.UserID), ttl)
	pipe.Expire(ctx, seqKey(toast.UserID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

func (r *implRepository) ListActive(ctx context.Context, userID string, now time.Time) ([]model.Toast, error) {
	client := r.redis.GetClient()
	cutoff := strconv.FormatInt(now.UnixMilli(), 10)

	expired, err := client.ZRangeByScore(ctx, indexKey(userID), &goredis.ZRangeBy{Min: "-inf", Max: cutoff}).Result()
	if err != nil {
		return nil, fmt.Errorf("ListActive.ZRangeByScore: %w", err)
	}
	if len(expired) > 0 {
		members := make([]any, len(expired))
		for i, id := range expired {
			members[i] = id
		}
		pipe := client.TxPipeline()
		pipe.ZRem(ctx, indexKey(userID), members...)
		pipe.HDel(ctx, payloadKey(userID), expired...)
		if _, err := pipe.Exec(ctx); err != nil {
			r.l.Warnf(ctx, "notification.repository.redis.ListActive: prune failed: %v", err)
		}
	}

	ids, err := client.ZRangeByScore(ctx, indexKey(userID), &goredis.ZRangeBy{Min: "(" + cutoff, Max: "+inf"}).Result()
	if err != nil {
		return nil, fmt.Errorf("ListActive.ZRangeByScore: %w", err)
	}
	if len(ids) == 0 {
		return []model.Toast{}, nil
	}

	payloads, err := client.HMGet(ctx, payloadKey(userID), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("ListActive.HMGet: %w", err)
	}

	stored := make([]storedToast, 0, len(payloads))
	for i, p := range payloads {
		s, ok := p.(string)
		if !ok {
			continue
		}
		var st storedToast
		if err := json.Unmarshal([]byte(s), &st); err != nil {
			r.l.Warnf(ctx, "notification.repository.redis.ListActive: bad payload for %s: %v", ids[i], err)
			continue
		}
		stored = append(stored, st)
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].Seq < stored[j].Seq })

	toasts := make([]model.Toast, len(stored))
	for i, st := range stored {
		toasts[i] = st.Toast
	}
	return toasts, nil
}

func (r *implRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	pipe := r.redis.GetClient().TxPipeline()
	removed := pipe.ZRem(ctx, indexKey(userID), id)
	pipe.HDel(ctx, payloadKey(userID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	return removed.Val() > 0, nil
}
