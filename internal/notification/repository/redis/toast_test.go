package redis

import (
	"context"
	"testing"
	"time"

	"comment-srv/internal/model"
	"comment-srv/pkg/log"
	pkgRedis "comment-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *implRepository {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(pkgRedis.Wrap(client), log.NewNop()).(*implRepository)
}

func toast(id string, created time.Time, ttl time.Duration) model.Toast {
	return model.Toast{
		ID: id, UserID: "u-1", Title: "Reply Sent", Variant: model.ToastDefault,
		CreatedAt: created, ExpiresAt: created.Add(ttl),
	}
}

func TestListActive(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now()

	require.NoError(t, repo.Save(ctx, toast("aaaaaaa", now.Add(-5*time.Second), 3*time.Second)))
	require.NoError(t, repo.Save(ctx, toast("zzzzzzz", now, 3*time.Second)))
	require.NoError(t, repo.Save(ctx, toast("bbbbbbb", now.Add(time.Millisecond), 3*time.Second)))

	got, err := repo.ListActive(ctx, "u-1", now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "zzzzzzz", got[0].ID)
	assert.Equal(t, "bbbbbbb", got[1].ID)

	// The expired toast was pruned from both keys.
	n, err := repo.redis.GetClient().HLen(ctx, payloadKey("u-1")).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestListActiveKeepsPushOrderWithinMillisecond(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now().Truncate(time.Millisecond)

	for _, id := range []string{"zzzzzzz", "aaaaaaa", "mmmmmmm"} {
		require.NoError(t, repo.Save(ctx, toast(id, now, 3*time.Second)))
	}

	got, err := repo.ListActive(ctx, "u-1", now)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"zzzzzzz", "aaaaaaa", "mmmmmmm"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestListActiveEmpty(t *testing.T) {
	repo := newTestRepo(t)
	got, err := repo.ListActive(context.Background(), "nobody", time.Now())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.Save(ctx, toast("aaaaaaa", time.Now(), 3*time.Second)))

	ok, err := repo.Delete(ctx, "u-1", "aaaaaaa")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, "u-1", "aaaaaaa")
	require.NoError(t, err)
	assert.False(t, ok)
}
