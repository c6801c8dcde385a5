package usecase

import (
	"context"
	"errors"
	"testing"

	"comment-srv/internal/model"
	"comment-srv/internal/post"
	"comment-srv/internal/post/repository"
	"comment-srv/internal/post/repository/mocks"
	"comment-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sc = model.Scope{UserID: "u-1"}

func initUseCase(t *testing.T) (post.UseCase, *mocks.PostgresRepository, *mocks.CacheRepository) {
	repo := mocks.NewPostgresRepository(t)
	cache := mocks.NewCacheRepository(t)
	return New(repo, cache, log.NewNop()), repo, cache
}

func TestPreview(t *testing.T) {
	ctx := context.Background()
	opt := repository.CommentOptions{UserID: "u-1", CommentID: "c-1"}

	t.Run("no selection", func(t *testing.T) {
		uc, _, _ := initUseCase(t)
		out, err := uc.Preview(ctx, sc, post.PreviewInput{})
		require.NoError(t, err)
		assert.False(t, out.Found)
		assert.Equal(t, "Select a comment", out.Message)
	})

	t.Run("found via cache", func(t *testing.T) {
		uc, repo, cache := initUseCase(t)
		repo.On("CommentPostID", mock.Anything, opt).Return("p-1", nil)
		repo.On("CountReplies", mock.Anything, opt).Return(2, nil)
		cache.On("GetPost", mock.Anything, "u-1", "p-1").Return(model.Post{ID: "p-1", Platform: model.PlatformYouTube}, nil)

		out, err := uc.Preview(ctx, sc, post.PreviewInput{CommentID: "c-1"})
		require.NoError(t, err)
		assert.True(t, out.Found)
		assert.Equal(t, "YouTube", out.PlatformLabel)
		assert.Equal(t, 2, out.ReplyCount)
	})

	t.Run("missing post is silent", func(t *testing.T) {
		uc, repo, cache := initUseCase(t)
		repo.On("CommentPostID", mock.Anything, opt).Return("p-gone", nil)
		repo.On("CountReplies", mock.Anything, opt).Return(0, nil)
		cache.On("GetPost", mock.Anything, "u-1", "p-gone").Return(model.Post{}, repository.ErrCacheMiss)
		repo.On("GetPost", mock.Anything, repository.GetOptions{UserID: "u-1", ID: "p-gone"}).Return(model.Post{}, repository.ErrNotFound)

		out, err := uc.Preview(ctx, sc, post.PreviewInput{CommentID: "c-1"})
		require.NoError(t, err)
		assert.False(t, out.Found)
		assert.Empty(t, out.Message)
	})

	t.Run("load failure", func(t *testing.T) {
		uc, repo, _ := initUseCase(t)
		repo.On("CommentPostID", mock.Anything, opt).Return("", errors.New("conn reset"))
		repo.On("CountReplies", mock.Anything, opt).Return(0, nil).Maybe()

		_, err := uc.Preview(ctx, sc, post.PreviewInput{CommentID: "c-1"})
		assert.ErrorIs(t, err, post.ErrLoadFailed)
	})
}

func TestGetWarmsCache(t *testing.T) {
	ctx := context.Background()
	uc, repo, cache := initUseCase(t)
	p := model.Post{ID: "p-1", UserID: "u-1"}
	cache.On("GetPost", ctx, "u-1", "p-1").Return(model.Post{}, repository.ErrCacheMiss)
	repo.On("GetPost", ctx, repository.GetOptions{UserID: "u-1", ID: "p-1"}).Return(p, nil)
	cache.On("SavePost", ctx, p).Return(nil)

	got, err := uc.Get(ctx, sc, "p-1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and invalidates", func(t *testing.T) {
		uc, repo, cache := initUseCase(t)
		posts := []model.Post{{ID: "p-1", Platform: model.PlatformTwitter}}
		repo.On("UpsertPosts", ctx, repository.UpsertOptions{UserID: "u-1", Posts: posts}).Return(1, nil)
		cache.On("DeletePosts", ctx, "u-1", []string{"p-1"}).Return(nil)

		n, err := uc.Upsert(ctx, sc, post.UpsertInput{Posts: posts})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("rejects negative counters", func(t *testing.T) {
		uc, _, _ := initUseCase(t)
		_, err := uc.Upsert(ctx, sc, post.UpsertInput{Posts: []model.Post{{ID: "p-1", Platform: model.PlatformTwitter, Views: -1}}})
		assert.ErrorIs(t, err, post.ErrInvalidPost)
	})

	t.Run("nothing to do", func(t *testing.T) {
		uc, _, _ := initUseCase(t)
		n, err := uc.Upsert(ctx, sc, post.UpsertInput{})
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
