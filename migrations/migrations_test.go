package migrations

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"comment-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	all, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, all)
	assert.Equal(t, "001", all[0].Version)
	assert.Equal(t, "init", all[0].Name)
	assert.Contains(t, all[0].Up, "CREATE SCHEMA IF NOT EXISTS comment")
	assert.Contains(t, all[0].Down, "DROP TABLE IF EXISTS comments")
}

func TestLoadRejects(t *testing.T) {
	_, err := load(fstest.MapFS{"001_init.sql": {Data: []byte("x")}})
	assert.Error(t, err)

	_, err = load(fstest.MapFS{"002_x.down.sql": {Data: []byte("x")}})
	assert.Error(t, err)
}

func TestLoadSortsVersions(t *testing.T) {
	all, err := load(fstest.MapFS{
		"010_late.up.sql":  {Data: []byte("b")},
		"002_early.up.sql": {Data: []byte("a")},
	})
	require.NoError(t, err)
	assert.Equal(t, "002", all[0].Version)
	assert.Equal(t, "010", all[1].Version)
}

var fixture = []Migration{
	{Version: "001", Name: "init", Up: "CREATE TABLE a (id INT)", Down: "DROP TABLE a"},
	{Version: "002", Name: "more", Up: "CREATE TABLE b (id INT)", Down: "DROP TABLE b"},
}

func TestUpSkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS public.comment_schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM public.comment_schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("001"))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO public.comment_schema_migrations").WithArgs("002", "more").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := up(context.Background(), db, log.NewNop(), fixture)
	require.NoError(t, err)
	assert.Equal(t, []string{"002"}, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpRollsBackFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version").WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE a").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	applied, err := up(context.Background(), db, log.NewNop(), fixture)
	assert.ErrorContains(t, err, "001_init")
	assert.Empty(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT version").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("001").AddRow("002"))
	mock.ExpectBegin()
	mock.ExpectExec("DROP TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM public.comment_schema_migrations").WithArgs("002").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reverted, err := down(context.Background(), db, log.NewNop(), fixture, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"002"}, reverted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
