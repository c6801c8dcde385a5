package notification

import "errors"

var (
	ErrTitleRequired  = errors.New("notification: title is required")
	ErrInvalidVariant = errors.New("notification: invalid variant")
	ErrStoreFailed    = errors.New("notification: store unavailable")
)
