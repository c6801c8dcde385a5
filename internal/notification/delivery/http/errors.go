package http

import (
	"errors"

	"comment-srv/internal/notification"
	pkgErrors "comment-srv/pkg/errors"
)

var (
	errWrongBody        = pkgErrors.NewHTTPError(400, "Wrong body")
	errTitleRequired    = pkgErrors.NewHTTPError(400, "Title is required")
	errInvalidVariant   = pkgErrors.NewHTTPError(400, "Variant must be default or destructive")
	errStoreUnavailable = pkgErrors.NewHTTPError(503, "Notification store unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notification.ErrTitleRequired):
		return errTitleRequired
	case errors.Is(err, notification.ErrInvalidVariant):
		return errInvalidVariant
	case errors.Is(err, notification.ErrStoreFailed):
		return errStoreUnavailable
	default:
		panic(err)
	}
}
