package http

import (
	"errors"

	"comment-srv/internal/comment"
	"comment-srv/internal/dashboard"
	"comment-srv/internal/reply"
	pkgErrors "comment-srv/pkg/errors"
)

var (
	errWrongBody           = pkgErrors.NewHTTPError(400, "Wrong body")
	errInvalidDimension    = pkgErrors.NewHTTPError(400, "Invalid filter dimension")
	errInvalidValue        = pkgErrors.NewHTTPError(400, "Invalid filter value")
	errInvalidCriteria     = pkgErrors.NewHTTPError(400, "Invalid filter")
	errInvalidKey          = pkgErrors.NewHTTPError(400, "Invalid key")
	errInvalidAction       = pkgErrors.NewHTTPError(400, "Invalid action")
	errEmptySelection      = pkgErrors.NewHTTPError(400, "No comments selected")
	errCommentNotFound     = pkgErrors.NewHTTPError(404, "Comment not found")
	errAlreadySubmitting   = pkgErrors.NewHTTPError(409, "Reply is already being sent")
	errStoreUnavailable    = pkgErrors.NewHTTPError(503, "Session store unavailable")
	errCommentsUnavailable = pkgErrors.NewHTTPError(503, "Comment store unavailable")
	errComposerUnavailable = pkgErrors.NewHTTPError(503, "Composer store unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrInvalidDimension):
		return errInvalidDimension
	case errors.Is(err, dashboard.ErrInvalidValue):
		return errInvalidValue
	case errors.Is(err, dashboard.ErrInvalidKey):
		return errInvalidKey
	case errors.Is(err, dashboard.ErrStoreFailed):
		return errStoreUnavailable
	case errors.Is(err, comment.ErrInvalidCriteria):
		return errInvalidCriteria
	case errors.Is(err, comment.ErrInvalidAction):
		return errInvalidAction
	case errors.Is(err, comment.ErrEmptySelection):
		return errEmptySelection
	case errors.Is(err, comment.ErrNotFound):
		return errCommentNotFound
	case errors.Is(err, comment.ErrStoreFailed):
		return errCommentsUnavailable
	case errors.Is(err, reply.ErrAlreadySubmitting):
		return errAlreadySubmitting
	case errors.Is(err, reply.ErrStoreFailed):
		return errComposerUnavailable
	default:
		panic(err)
	}
}
