package reply

import (
	"context"

	"comment-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Open(ctx context.Context, sc model.Scope, input OpenInput) (Draft, error)
	Get(ctx context.Context, sc model.Scope) (Draft, error)
	ChangeIntent(ctx context.Context, sc model.Scope, intent Intent) (Draft, error)
	SelectSuggestion(ctx context.Context, sc model.Scope, idx int) (Draft, error)
	Edit(ctx context.Context, sc model.Scope, text string) (Draft, error)
	ApplyTool(ctx context.Context, sc model.Scope, tool Tool) (Draft, error)
	Suggest(ctx context.Context, sc model.Scope) (Draft, error)
	Submit(ctx context.Context, sc model.Scope) (SubmitOutput, error)
	Cancel(ctx context.Context, sc model.Scope) error
	ListThread(ctx context.Context, sc model.Scope, commentID string) ([]model.Reply, error)
	Deliver(ctx context.Context, input DeliverInput) error
}

// Producer publishes reply dispatches to the platform workers.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishDispatch(ctx context.Context, d Dispatch) error
}

// SelectionReader returns the comments currently selected on the dashboard, in selection order.
//
//go:generate mockery --name SelectionReader
type SelectionReader interface {
	SelectedIDs(ctx context.Context, sc model.Scope) ([]string, error)
}
