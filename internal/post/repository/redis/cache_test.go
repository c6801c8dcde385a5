package redis

import (
	"context"
	"testing"
	"time"

	"comment-srv/internal/model"
	"comment-srv/internal/post/repository"
	"comment-srv/pkg/log"
	pkgRedis "comment-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()
	repo := New(pkgRedis.Wrap(client), log.NewNop(), time.Minute)

	_, err := repo.GetPost(ctx, "u-1", "p-1")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	p := model.Post{ID: "p-1", UserID: "u-1", Platform: model.PlatformInstagram, Title: "Reel"}
	require.NoError(t, repo.SavePost(ctx, p))
	assert.Equal(t, time.Minute, mr.TTL("post:u-1:p-1"))

	got, err := repo.GetPost(ctx, "u-1", "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Reel", got.Title)

	require.NoError(t, repo.DeletePosts(ctx, "u-1", []string{"p-1"}))
	_, err = repo.GetPost(ctx, "u-1", "p-1")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}
