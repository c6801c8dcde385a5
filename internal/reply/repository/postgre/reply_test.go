package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"comment-srv/internal/model"
	"comment-srv/internal/reply/repository"
	"comment-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &implRepository{db: db, l: log.NewNop()}, mock
}

var replyRows = []string{"id", "comment_id", "author_name", "author_avatar", "is_owner", "text", "likes", "is_ai_generated", "created_at"}

func TestListReplies(t *testing.T) {
	ctx := context.Background()

	t.Run("oldest first", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(replyRows).
			AddRow("r-1", "c-1", "Alex", "", false, "Nice video", 2, false, t1).
			AddRow("r-2", "c-1", "You", "a.png", true, "Thanks!", 0, true, t1.Add(time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY r.created_at ASC")).
			WithArgs("c-1", "u-1").WillReturnRows(rows)

		got, err := repo.ListReplies(ctx, repository.ListOptions{UserID: "u-1", CommentID: "c-1"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[1].Author.IsOwner)
		assert.True(t, got[1].IsAIGenerated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty thread is not an error", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectQuery("FROM comment_replies").WillReturnRows(sqlmock.NewRows(replyRows))

		got, err := repo.ListReplies(ctx, repository.ListOptions{UserID: "u-1", CommentID: "c-1"})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestInsertReply(t *testing.T) {
	ctx := context.Background()
	rp := model.Reply{
		ID: "r-9", CommentID: "c-1", Author: model.ReplyAuthor{Name: "Ana", IsOwner: true},
		Text: "Thanks!", CreatedAt: time.Now(),
	}

	t.Run("fresh insert bumps counter", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT TRUE FROM comments").WithArgs("c-1", "u-1").
			WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))
		mock.ExpectExec("INSERT INTO comment_replies").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("SET replies = replies + 1")).WithArgs("c-1", "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		inserted, err := repo.InsertReply(ctx, repository.InsertOptions{UserID: "u-1", Reply: rp})
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redelivery is a no-op", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT TRUE FROM comments").
			WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))
		mock.ExpectExec("INSERT INTO comment_replies").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		inserted, err := repo.InsertReply(ctx, repository.InsertOptions{UserID: "u-1", Reply: rp})
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("comment gone", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT TRUE FROM comments").WillReturnRows(sqlmock.NewRows([]string{"bool"}))
		mock.ExpectRollback()

		_, err := repo.InsertReply(ctx, repository.InsertOptions{UserID: "u-1", Reply: rp})
		assert.ErrorIs(t, err, repository.ErrCommentNotFound)
	})

	t.Run("insert failure", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT TRUE FROM comments").
			WillReturnRows(sqlmock.NewRows([]string{"bool"}).AddRow(true))
		mock.ExpectExec("INSERT INTO comment_replies").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := repo.InsertReply(ctx, repository.InsertOptions{UserID: "u-1", Reply: rp})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrCommentNotFound)
	})
}
