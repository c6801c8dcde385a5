package redis

import (
	"context"
	"testing"
	"time"

	"comment-srv/internal/reply"
	"comment-srv/internal/reply/repository"
	"comment-srv/pkg/log"
	pkgRedis "comment-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*implRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(pkgRedis.Wrap(client), log.NewNop(), time.Hour).(*implRepository), mr
}

func TestDraftRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t)

	_, err := repo.GetDraft(ctx, "u-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	d := reply.NewDraft([]string{"c-1", "c-2"}, false, "")
	require.NoError(t, d.BeginSubmit())
	require.NoError(t, repo.SaveDraft(ctx, "u-1", d))
	assert.Equal(t, time.Hour, mr.TTL(draftKey("u-1")))

	got, err := repo.GetDraft(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(d, got))

	require.NoError(t, repo.DeleteDraft(ctx, "u-1"))
	_, err = repo.GetDraft(ctx, "u-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSubmitLock(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t)

	token, err := repo.AcquireSubmitLock(ctx, "u-1", 30*time.Second)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	second, err := repo.AcquireSubmitLock(ctx, "u-1", 30*time.Second)
	require.NoError(t, err)
	assert.Empty(t, second)

	other, err := repo.AcquireSubmitLock(ctx, "u-2", 30*time.Second)
	require.NoError(t, err)
	assert.NotEmpty(t, other)

	// A stale token must not release someone else's lock.
	require.NoError(t, repo.ReleaseSubmitLock(ctx, "u-1", "stale"))
	assert.True(t, mr.Exists(lockKey("u-1")))

	require.NoError(t, repo.ReleaseSubmitLock(ctx, "u-1", token))
	assert.False(t, mr.Exists(lockKey("u-1")))

	mr.FastForward(31 * time.Second)
	again, err := repo.AcquireSubmitLock(ctx, "u-2", 30*time.Second)
	require.NoError(t, err)
	assert.NotEmpty(t, again)
}
