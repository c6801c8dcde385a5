package usecase

import (
	"context"
	"errors"
	"testing"

	"comment-srv/internal/dashboard"
	"comment-srv/internal/dashboard/repository"
	repoMocks "comment-srv/internal/dashboard/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionReader(t *testing.T) {
	ctx := context.Background()

	t.Run("stored selection in order", func(t *testing.T) {
		repo := repoMocks.NewRepository(t)
		repo.On("GetSession", ctx, "u-1").Return(session(-1, "c-3", "c-1"), nil)

		ids, err := NewSelectionReader(repo).SelectedIDs(ctx, sc)
		require.NoError(t, err)
		assert.Equal(t, []string{"c-3", "c-1"}, ids)
	})

	t.Run("no session means nothing selected", func(t *testing.T) {
		repo := repoMocks.NewRepository(t)
		repo.On("GetSession", ctx, "u-1").Return(dashboard.Session{}, repository.ErrNotFound)

		ids, err := NewSelectionReader(repo).SelectedIDs(ctx, sc)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("store down", func(t *testing.T) {
		repo := repoMocks.NewRepository(t)
		repo.On("GetSession", ctx, "u-1").Return(dashboard.Session{}, errors.New("conn refused"))

		_, err := NewSelectionReader(repo).SelectedIDs(ctx, sc)
		assert.ErrorIs(t, err, dashboard.ErrStoreFailed)
	})
}
