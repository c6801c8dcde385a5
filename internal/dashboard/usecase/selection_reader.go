package usecase

import (
	"context"
	"errors"
	"fmt"

	"comment-srv/internal/dashboard"
	"comment-srv/internal/dashboard/repository"
	"comment-srv/internal/model"
	"comment-srv/internal/reply"
)

type selectionReader struct {
	repo repository.Repository
}

// NewSelectionReader exposes the stored selection to the reply composer.
// It reads the session repository directly because the dashboard use case depends on reply.
func NewSelectionReader(repo repository.Repository) reply.SelectionReader {
	return selectionReader{repo: repo}
}

func (r selectionReader) SelectedIDs(ctx context.Context, sc model.Scope) ([]string, error) {
	s, err := r.repo.GetSession(ctx, sc.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dashboard.ErrStoreFailed, err)
	}
	return s.Selection.IDs(), nil
}
