package notification

import (
	"time"

	"comment-srv/internal/model"
	"comment-srv/pkg/util"
)

// NewToast validates input and builds a toast created at now.
func NewToast(userID string, input PushInput, now time.Time, ttl time.Duration) (model.Toast, error) {
	if input.Title == "" {
		return model.Toast{}, ErrTitleRequired
	}
	variant := input.Variant
	switch variant {
	case "":
		variant = model.ToastDefault
	case model.ToastDefault, model.ToastDestructive:
	default:
		return model.Toast{}, ErrInvalidVariant
	}

	return model.Toast{
		ID:          util.RandomBase36(IDLength),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Variant:     variant,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}, nil
}
