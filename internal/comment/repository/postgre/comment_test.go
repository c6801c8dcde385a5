package postgre

import (
	"context"
	"regexp"
	"testing"
	"time"

	"comment-srv/internal/comment/repository"
	"comment-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "post_id", "user_id", "platform", "author_name", "author_avatar", "text", "time_label",
	"emotion", "sentiment", "category", "flagged", "needs_attention", "archived", "saved", "important",
	"likes", "replies", "position", "created_at"}

func TestListComments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM comments")).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("a", "p-1", "u-1", "youtube", "Alex", "", "great video", "2h ago",
				"happy", "positive", "general", true, false, false, false, false, 3, 1, 0, now).
			AddRow("b", "p-1", "u-1", "instagram", "Sam", "", "bad experience", "1d ago",
				"angry", "negative", "product", false, true, false, false, false, 0, 0, 1, now))

	repo := New(db, log.NewNop())
	got, err := repo.ListComments(context.Background(), repository.ListOptions{UserID: "u-1"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.True(t, got[0].Flagged)
	assert.Equal(t, "Sam", got[1].Author.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommentNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM comments")).
		WithArgs("missing", "u-1").
		WillReturnRows(sqlmock.NewRows(cols))

	_, err = New(db, log.NewNop()).GetComment(context.Background(), repository.GetOptions{UserID: "u-1", ID: "missing"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateFlagsRejectsUnknownColumn(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = New(db, log.NewNop()).UpdateFlags(context.Background(), repository.UpdateFlagsOptions{
		UserID: "u-1", IDs: []string{"a"}, Flag: "user_id; DROP TABLE comments", Value: true,
	})
	assert.ErrorIs(t, err, repository.ErrInvalidFlag)
}

func TestUpdateFlags(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE comments SET archived = $1")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := New(db, log.NewNop()).UpdateFlags(context.Background(), repository.UpdateFlagsOptions{
		UserID: "u-1", IDs: []string{"a", "b"}, Flag: repository.FlagArchived, Value: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
