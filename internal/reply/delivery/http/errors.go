package http

import (
	"errors"

	"comment-srv/internal/comment"
	"comment-srv/internal/reply"
	pkgErrors "comment-srv/pkg/errors"
)

var (
	errWrongBody           = pkgErrors.NewHTTPError(400, "Wrong body")
	errNoRecipients        = pkgErrors.NewHTTPError(400, "Select at least one comment to reply to")
	errNoDraft             = pkgErrors.NewHTTPError(404, "No reply is being composed")
	errCommentNotFound     = pkgErrors.NewHTTPError(404, "Comment not found")
	errInvalidIntent       = pkgErrors.NewHTTPError(400, "Invalid intent")
	errInvalidSuggestion   = pkgErrors.NewHTTPError(400, "Invalid suggestion")
	errInvalidTool         = pkgErrors.NewHTTPError(400, "Invalid tool")
	errEmptyReply          = pkgErrors.NewHTTPError(400, "Reply is empty")
	errAlreadySubmitting   = pkgErrors.NewHTTPError(409, "Reply is already being sent")
	errDispatchFailed      = pkgErrors.NewHTTPError(502, "Reply could not be sent")
	errStoreUnavailable    = pkgErrors.NewHTTPError(503, "Composer store unavailable")
	errCommentsUnavailable = pkgErrors.NewHTTPError(503, "Comment store unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reply.ErrNoRecipients):
		return errNoRecipients
	case errors.Is(err, reply.ErrNoDraft):
		return errNoDraft
	case errors.Is(err, comment.ErrNotFound):
		return errCommentNotFound
	case errors.Is(err, reply.ErrInvalidIntent):
		return errInvalidIntent
	case errors.Is(err, reply.ErrInvalidSuggestion):
		return errInvalidSuggestion
	case errors.Is(err, reply.ErrInvalidTool):
		return errInvalidTool
	case errors.Is(err, reply.ErrEmptyReply):
		return errEmptyReply
	case errors.Is(err, reply.ErrAlreadySubmitting):
		return errAlreadySubmitting
	case errors.Is(err, reply.ErrDispatchFailed):
		return errDispatchFailed
	case errors.Is(err, reply.ErrStoreFailed):
		return errStoreUnavailable
	case errors.Is(err, comment.ErrStoreFailed):
		return errCommentsUnavailable
	default:
		panic(err)
	}
}
