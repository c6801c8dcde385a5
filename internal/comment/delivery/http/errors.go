package http

import (
	"errors"

	"comment-srv/internal/comment"
	pkgErrors "comment-srv/pkg/errors"
)

var (
	errWrongBody        = pkgErrors.NewHTTPError(400, "Wrong body")
	errWrongQuery       = pkgErrors.NewHTTPError(400, "Wrong query")
	errUserRequired     = pkgErrors.NewHTTPError(400, "User ID is required")
	errNotFound         = pkgErrors.NewHTTPError(404, "Comment not found")
	errInvalidAction    = pkgErrors.NewHTTPError(400, "Invalid action")
	errEmptySelection   = pkgErrors.NewHTTPError(400, "No comments selected")
	errInvalidComment   = pkgErrors.NewHTTPError(400, "Invalid comment")
	errInvalidCriteria  = pkgErrors.NewHTTPError(400, "Invalid filter")
	errStoreUnavailable = pkgErrors.NewHTTPError(503, "Comment store unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, comment.ErrNotFound):
		return errNotFound
	case errors.Is(err, comment.ErrInvalidAction):
		return errInvalidAction
	case errors.Is(err, comment.ErrEmptySelection):
		return errEmptySelection
	case errors.Is(err, comment.ErrInvalidComment):
		return errInvalidComment
	case errors.Is(err, comment.ErrInvalidCriteria):
		return errInvalidCriteria
	case errors.Is(err, comment.ErrStoreFailed):
		return errStoreUnavailable
	default:
		panic(err)
	}
}
