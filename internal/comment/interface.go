package comment

import (
	"context"

	"comment-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	LoadMore(ctx context.Context, sc model.Scope, input LoadMoreInput) (LoadMoreOutput, error)
	VisibleIDs(ctx context.Context, sc model.Scope, criteria model.FilterCriteria) ([]string, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Comment, error)
	Act(ctx context.Context, sc model.Scope, input ActInput) (ActOutput, error)
	BulkAct(ctx context.Context, sc model.Scope, input BulkActInput) (BulkActOutput, error)
	Ingest(ctx context.Context, sc model.Scope, input IngestInput) (IngestOutput, error)
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
}
