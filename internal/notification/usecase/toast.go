package usecase

import (
	"context"
	"fmt"

	"comment-srv/internal/model"
	"comment-srv/internal/notification"
)

// Push - Queue a toast. Identical toasts are not merged.
func (uc *implUseCase) Push(ctx context.Context, sc model.Scope, input notification.PushInput) (model.Toast, error) {
	toast, err := notification.NewToast(sc.UserID, input, uc.now(), uc.ttl)
	if err != nil {
		return model.Toast{}, err
	}

	if err := uc.repo.Save(ctx, toast); err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Push: Save failed: %v", err)
		return model.Toast{}, fmt.Errorf("%w: %v", notification.ErrStoreFailed, err)
	}

	uc.publish(ctx, notification.Event{Type: notification.EventPushed, Toast: toast})
	return toast, nil
}

// List - Active toasts in push order
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Toast, error) {
	toasts, err := uc.repo.ListActive(ctx, sc.UserID, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.List: ListActive failed: %v", err)
		return nil, fmt.Errorf("%w: %v", notification.ErrStoreFailed, err)
	}
	return toasts, nil
}

// Dismiss - Remove a toast; unknown ids are ignored
func (uc *implUseCase) Dismiss(ctx context.Context, sc model.Scope, id string) error {
	removed, err := uc.repo.Delete(ctx, sc.UserID, id)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Dismiss: Delete failed: %v", err)
		return fmt.Errorf("%w: %v", notification.ErrStoreFailed, err)
	}
	if removed {
		uc.publish(ctx, notification.Event{Type: notification.EventDismissed, Toast: model.Toast{ID: id, UserID: sc.UserID}})
	}
	return nil
}

// publish is best effort: a broker outage never fails the toast.
func (uc *implUseCase) publish(ctx context.Context, event notification.Event) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishEvent(ctx, event); err != nil {
		uc.l.Warnf(ctx, "notification.usecase.publish: PublishEvent failed: %v", err)
	}
}
