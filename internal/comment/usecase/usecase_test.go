package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"comment-srv/internal/comment"
	"comment-srv/internal/comment/repository"
	repoMocks "comment-srv/internal/comment/repository/mocks"
	"comment-srv/internal/model"
	"comment-srv/internal/notification"
	notifMocks "comment-srv/internal/notification/mocks"
	"comment-srv/internal/post"
	postMocks "comment-srv/internal/post/mocks"
	"comment-srv/pkg/log"
	"comment-srv/pkg/paginator"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDeps struct {
	repo   *repoMocks.PostgresRepository
	cache  *repoMocks.CacheRepository
	notify *notifMocks.UseCase
	post   *postMocks.UseCase
}

var sc = model.Scope{UserID: "u-1"}

func initUseCase(t *testing.T, cfg Config) (comment.UseCase, mockDeps) {
	deps := mockDeps{
		repo:   repoMocks.NewPostgresRepository(t),
		cache:  repoMocks.NewCacheRepository(t),
		notify: notifMocks.NewUseCase(t),
		post:   postMocks.NewUseCase(t),
	}
	return New(deps.repo, deps.cache, deps.notify, deps.post, log.NewNop(), cfg), deps
}

func store(n int) []model.Comment {
	out := make([]model.Comment, n)
	for i := range out {
		out[i] = model.Comment{
			ID:       string(rune('a'+i%26)) + strings.Repeat("x", i/26),
			Text:     "comment",
			Platform: model.PlatformYouTube,
			Flagged:  i%2 == 0,
		}
	}
	return out
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit pages filtered store", func(t *testing.T) {
		uc, deps := initUseCase(t, Config{PageSize: 2})
		deps.cache.On("GetStore", ctx, "u-1").Return(store(6), nil)

		out, err := uc.List(ctx, sc, comment.ListInput{
			Criteria: model.FilterCriteria{Status: model.StatusFlagged},
			Paginate: paginator.Query{Page: 2},
		})
		require.NoError(t, err)
		assert.False(t, out.Empty)
		assert.Equal(t, 3, out.Paginator.Total)
		assert.Equal(t, 1, out.Paginator.Count)
		assert.Equal(t, "e", out.Items[0].ID)
	})

	t.Run("cache miss falls back to postgres and warms cache", func(t *testing.T) {
		uc, deps := initUseCase(t, DefaultConfig())
		deps.cache.On("GetStore", ctx, "u-1").Return(nil, repository.ErrCacheMiss)
		deps.repo.On("ListComments", ctx, repository.ListOptions{UserID: "u-1"}).Return(store(3), nil)
		deps.cache.On("SaveStore", ctx, "u-1", mock.Anything).Return(nil)

		out, err := uc.List(ctx, sc, comment.ListInput{Criteria: model.DefaultFilterCriteria()})
		require.NoError(t, err)
		assert.Len(t, out.Items, 3)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		uc, deps := initUseCase(t, DefaultConfig())
		deps.cache.On("GetStore", ctx, "u-1").Return(store(3), nil)

		out, err := uc.List(ctx, sc, comment.ListInput{Criteria: model.FilterCriteria{Search: "nothing"}})
		require.NoError(t, err)
		assert.True(t, out.Empty)
		assert.NotNil(t, out.Items)
		assert.Empty(t, out.Items)
	})

	t.Run("store failure", func(t *testing.T) {
		uc, deps := initUseCase(t, DefaultConfig())
		deps.cache.On("GetStore", ctx, "u-1").Return(nil, repository.ErrCacheMiss)
		deps.repo.On("ListComments", ctx, mock.Anything).Return(nil, errors.New("conn refused"))

		_, err := uc.List(ctx, sc, comment.ListInput{})
		assert.ErrorIs(t, err, comment.ErrStoreFailed)
	})

	t.Run("invalid criteria", func(t *testing.T) {
		uc, _ := initUseCase(t, DefaultConfig())
		_, err := uc.List(ctx, sc, comment.ListInput{Criteria: model.FilterCriteria{Status: "pinned"}})
		assert.ErrorIs(t, err, comment.ErrInvalidCriteria)
	})
}

func TestPreviewTruncation(t *testing.T) {
	ctx := context.Background()
	uc, deps := initUseCase(t, DefaultConfig())
	long := strings.Repeat("é", 200)
	deps.cache.On("GetStore", ctx, "u-1").Return([]model.Comment{{ID: "a", Text: long}, {ID: "b", Text: "short"}}, nil)

	out, err := uc.List(ctx, sc, comment.ListInput{})
	require.NoError(t, err)
	assert.True(t, out.Items[0].Truncated)
	assert.Equal(t, strings.Repeat("é", 180)+"...", out.Items[0].Preview)
	assert.Equal(t, long, out.Items[0].Text)
	assert.False(t, out.Items[1].Truncated)
	assert.Equal(t, "short", out.Items[1].Preview)
}

func TestLoadMore(t *testing.T) {
	ctx := context.Background()
	uc, deps := initUseCase(t, Config{FeedLimit: 5, PageSize: 2})
	deps.cache.On("GetStore", ctx, "u-1").Return(store(8), nil)

	var loaded []string
	cursor := 0
	for {
		out, err := uc.LoadMore(ctx, sc, comment.LoadMoreInput{Loaded: cursor})
		require.NoError(t, err)
		for _, it := range out.Items {
			loaded = append(loaded, it.ID)
		}
		cursor = out.Loaded
		if !out.HasMore {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, loaded); diff != "" {
		t.Errorf("LoadMore mismatch (-want +got):\n%s", diff)
	}

	out, err := uc.LoadMore(ctx, sc, comment.LoadMoreInput{Loaded: 5})
	require.NoError(t, err)
	assert.False(t, out.HasMore)
	assert.Empty(t, out.Items)
}

func TestVisibleIDs(t *testing.T) {
	ctx := context.Background()
	uc, deps := initUseCase(t, DefaultConfig())
	deps.cache.On("GetStore", ctx, "u-1").Return(store(4), nil)

	got, err := uc.VisibleIDs(ctx, sc, model.FilterCriteria{Status: model.StatusFlagged})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	uc, deps := initUseCase(t, DefaultConfig())
	deps.repo.On("GetComment", ctx, repository.GetOptions{UserID: "u-1", ID: "zz"}).Return(model.Comment{}, repository.ErrNotFound)

	_, err := uc.Detail(ctx, sc, "zz")
	assert.ErrorIs(t, err, comment.ErrNotFound)
}

func TestAct(t *testing.T) {
	ctx := context.Background()
	id := "3f2a9c1e-77aa-4b2b-9b7a-000000000001"

	tcs := map[string]struct {
		action comment.Action
		title  string
		flag   repository.Flag
	}{
		"flag":      {comment.ActionFlag, "Comment flagged for review", repository.FlagFlagged},
		"archive":   {comment.ActionArchive, "Comment archived", repository.FlagArchived},
		"save":      {comment.ActionSave, "Comment saved for later", repository.FlagSaved},
		"important": {comment.ActionImportant, "Comment marked as important", repository.FlagImportant},
		"delete":    {comment.ActionDelete, "Comment deleted", ""},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc, deps := initUseCase(t, DefaultConfig())
			deps.repo.On("GetComment", ctx, repository.GetOptions{UserID: "u-1", ID: id}).Return(model.Comment{ID: id}, nil)
			if tc.action == comment.ActionDelete {
				deps.repo.On("SoftDelete", ctx, repository.SoftDeleteOptions{UserID: "u-1", IDs: []string{id}}).Return(1, nil)
			} else {
				deps.repo.On("UpdateFlags", ctx, repository.UpdateFlagsOptions{
					UserID: "u-1", IDs: []string{id}, Flag: tc.flag, Value: true,
				}).Return(1, nil)
			}
			deps.cache.On("InvalidateStore", ctx, "u-1").Return(nil)
			deps.notify.On("Push", ctx, sc, notification.PushInput{
				Title: tc.title, Description: "Comment ID: 3f2a9c1e...", Variant: model.ToastDefault,
			}).Return(model.Toast{ID: "abc1234", Title: tc.title}, nil)

			out, err := uc.Act(ctx, sc, comment.ActInput{CommentID: id, Action: tc.action})
			require.NoError(t, err)
			assert.Equal(t, tc.title, out.Toast.Title)
		})
	}

	t.Run("unknown action", func(t *testing.T) {
		uc, _ := initUseCase(t, DefaultConfig())
		_, err := uc.Act(ctx, sc, comment.ActInput{CommentID: id, Action: "pin"})
		assert.ErrorIs(t, err, comment.ErrInvalidAction)
	})

	t.Run("toast failure does not fail the action", func(t *testing.T) {
		uc, deps := initUseCase(t, DefaultConfig())
		deps.repo.On("GetComment", ctx, mock.Anything).Return(model.Comment{ID: "c1"}, nil)
		deps.repo.On("UpdateFlags", ctx, mock.Anything).Return(1, nil)
		deps.cache.On("InvalidateStore", ctx, "u-1").Return(nil)
		deps.notify.On("Push", ctx, sc, mock.Anything).Return(model.Toast{}, errors.New("redis down"))

		out, err := uc.Act(ctx, sc, comment.ActInput{CommentID: "c1", Action: comment.ActionFlag})
		require.NoError(t, err)
		assert.True(t, out.Comment.Flagged)
	})
}

func TestBulkAct(t *testing.T) {
	ctx := context.Background()

	t.Run("archive", func(t *testing.T) {
		uc, deps := initUseCase(t, DefaultConfig())
		deps.repo.On("UpdateFlags", ctx, repository.UpdateFlagsOptions{
			UserID: "u-1", IDs: []string{"a", "b", "c"}, Flag: repository.FlagArchived, Value: true,
		}).Return(3, nil)
		deps.cache.On("InvalidateStore", ctx, "u-1").Return(nil)
		deps.notify.On("Push", ctx, sc, notification.PushInput{
			Title: "Comments Archived", Description: "3 comments have been archived.", Variant: model.ToastDefault,
		}).Return(model.Toast{Title: "Comments Archived"}, nil)

		out, err := uc.BulkAct(ctx, sc, comment.BulkActInput{IDs: []string{"a", "b", "c"}, Action: comment.ActionArchive})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Affected)
	})

	t.Run("save", func(t *testing.T) {
		uc, deps := initUseCase(t, DefaultConfig())
		deps.repo.On("UpdateFlags", ctx, mock.Anything).Return(2, nil)
		deps.cache.On("InvalidateStore", ctx, "u-1").Return(nil)
		deps.notify.On("Push", ctx, sc, notification.PushInput{
			Title: "Comments Saved", Description: "2 comments have been saved for later.", Variant: model.ToastDefault,
		}).Return(model.Toast{}, nil)

		_, err := uc.BulkAct(ctx, sc, comment.BulkActInput{IDs: []string{"a", "b"}, Action: comment.ActionSave})
		require.NoError(t, err)
	})

	t.Run("empty selection", func(t *testing.T) {
		uc, _ := initUseCase(t, DefaultConfig())
		_, err := uc.BulkAct(ctx, sc, comment.BulkActInput{Action: comment.ActionArchive})
		assert.ErrorIs(t, err, comment.ErrEmptySelection)
	})

	t.Run("flag is not a bulk action", func(t *testing.T) {
		uc, _ := initUseCase(t, DefaultConfig())
		_, err := uc.BulkAct(ctx, sc, comment.BulkActInput{IDs: []string{"a"}, Action: comment.ActionFlag})
		assert.ErrorIs(t, err, comment.ErrInvalidAction)
	})
}

func TestIngest(t *testing.T) {
	ctx := context.Background()
	valid := model.Comment{
		PostID: "p-1", Platform: model.PlatformTikTok, Text: "<p>Love <b>this</b>!</p>",
		Emotion: model.EmotionHappy, Sentiment: model.SentimentPositive, Category: model.CategoryGeneral,
	}

	t.Run("strips markup, assigns ids and upserts posts first", func(t *testing.T) {
		uc, deps := initUseCase(t, DefaultConfig())
		posts := []model.Post{{ID: "p-1", Platform: model.PlatformTikTok}}
		deps.post.On("Upsert", ctx, sc, post.UpsertInput{Posts: posts}).Return(1, nil)
		deps.repo.On("UpsertComments", ctx, mock.MatchedBy(func(opt repository.UpsertOptions) bool {
			c := opt.Comments[0]
			return opt.UserID == "u-1" && c.ID != "" && c.Text == "Love this!" && c.UserID == "u-1"
		})).Return(1, nil)
		deps.cache.On("InvalidateStore", ctx, "u-1").Return(nil)
		deps.notify.On("Push", ctx, sc, notification.PushInput{
			Title: "New comments", Description: "1 comment added", Variant: model.ToastDefault,
		}).Return(model.Toast{}, nil)

		out, err := uc.Ingest(ctx, sc, comment.IngestInput{Comments: []model.Comment{valid}, Posts: posts})
		require.NoError(t, err)
		assert.Equal(t, comment.IngestOutput{Comments: 1, Posts: 1}, out)
	})

	t.Run("posts only raises no toast", func(t *testing.T) {
		uc, deps := initUseCase(t, DefaultConfig())
		posts := []model.Post{{ID: "p-2", Platform: model.PlatformYouTube}}
		deps.post.On("Upsert", ctx, sc, post.UpsertInput{Posts: posts}).Return(1, nil)
		deps.cache.On("InvalidateStore", ctx, "u-1").Return(nil)

		out, err := uc.Ingest(ctx, sc, comment.IngestInput{Posts: posts})
		require.NoError(t, err)
		assert.Equal(t, 0, out.Comments)
		deps.notify.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown platform", func(t *testing.T) {
		uc, _ := initUseCase(t, DefaultConfig())
		bad := valid
		bad.Platform = "myspace"
		_, err := uc.Ingest(ctx, sc, comment.IngestInput{Comments: []model.Comment{bad}})
		assert.ErrorIs(t, err, comment.ErrInvalidComment)
	})

	t.Run("requires a category", func(t *testing.T) {
		uc, _ := initUseCase(t, DefaultConfig())
		bad := valid
		bad.Category = ""
		_, err := uc.Ingest(ctx, sc, comment.IngestInput{Comments: []model.Comment{bad}})
		assert.ErrorIs(t, err, comment.ErrInvalidComment)
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	uc, deps := initUseCase(t, DefaultConfig())
	deps.cache.On("GetStore", ctx, "u-1").Return([]model.Comment{
		{Platform: model.PlatformYouTube, Emotion: model.EmotionHappy, Flagged: true, Archived: true},
		{Platform: model.PlatformYouTube, Emotion: model.EmotionSad, NeedsAttention: true},
	}, nil)

	out, err := uc.Stats(ctx, sc)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 2, out.Platforms[model.PlatformYouTube])
	assert.Equal(t, 1, out.Statuses[model.StatusFlagged])
	assert.Equal(t, 1, out.Statuses[model.StatusArchived])
	assert.Equal(t, 1, out.Statuses[model.StatusAttention])
}

func TestStripHTML(t *testing.T) {
	got, err := stripHTML("first<br>second &amp; third<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond & third", got)

	got, err = stripHTML("  plain text ")
	require.NoError(t, err)
	assert.Equal(t, "plain text", got)
}
