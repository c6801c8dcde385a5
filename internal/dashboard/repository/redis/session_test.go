package redis

import (
	"context"
	"testing"
	"time"

	"comment-srv/internal/dashboard"
	"comment-srv/internal/dashboard/repository"
	"comment-srv/internal/model"
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
	return New(pkgRedis.Wrap(client), log.NewNop(), 2*time.Hour).(*implRepository), mr
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t)

	_, err := repo.GetSession(ctx, "u-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	s := dashboard.NewSession()
	s.Criteria.Status = model.StatusFlagged
	s.Criteria.Platforms = []model.Platform{model.PlatformYouTube}
	s.Selection = dashboard.Selection{"c-2", "c-1"}
	s.Cursor = 3
	s.ComposerOpen = true
	require.NoError(t, repo.SaveSession(ctx, "u-1", s))
	assert.Equal(t, 2*time.Hour, mr.TTL(sessionKey("u-1")))

	got, err := repo.GetSession(ctx, "u-1")
	require.NoError(t, err)
	s.ComposerOpen = false
	assert.Empty(t, cmp.Diff(s, got))
}

func TestSessionNullSelection(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t)

	require.NoError(t, mr.Set(sessionKey("u-1"), `{"criteria":{"status":"all"},"selection":null,"cursor":-1}`))

	got, err := repo.GetSession(ctx, "u-1")
	require.NoError(t, err)
	assert.NotNil(t, got.Selection)
	assert.Equal(t, -1, got.Cursor)
}

func TestSessionCorruptPayload(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t)

	require.NoError(t, mr.Set(sessionKey("u-1"), "{"))

	_, err := repo.GetSession(ctx, "u-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestDefaultTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := New(pkgRedis.Wrap(client), log.NewNop(), 0).(*implRepository)
	assert.Equal(t, dashboard.DefaultSessionTTL, repo.ttl)
}
