package dashboard

import (
	"context"

	"comment-srv/internal/comment"
	"comment-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetSession(ctx context.Context, sc model.Scope) (Session, error)
	UpdateFilters(ctx context.Context, sc model.Scope, patch CriteriaPatch) (Session, error)
	ToggleFilter(ctx context.Context, sc model.Scope, input FilterInput) (Session, error)
	ClearFilter(ctx context.Context, sc model.Scope, input FilterInput) (Session, error)
	ClearAllFilters(ctx context.Context, sc model.Scope) (Session, error)
	ToggleSelection(ctx context.Context, sc model.Scope, commentID string) (Session, error)
	ToggleSelectAll(ctx context.Context, sc model.Scope) (Session, error)
	ClearSelection(ctx context.Context, sc model.Scope) (Session, error)
	Navigate(ctx context.Context, sc model.Scope, key Key) (NavigateOutput, error)
	BulkAct(ctx context.Context, sc model.Scope, action comment.Action) (BulkActOutput, error)
	Catalog(ctx context.Context, sc model.Scope) (CatalogOutput, error)
}
