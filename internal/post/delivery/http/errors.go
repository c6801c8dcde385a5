package http

import (
	"errors"

	"comment-srv/internal/post"
	pkgErrors "comment-srv/pkg/errors"
)

var (
	errNotFound    = pkgErrors.NewHTTPError(404, "Post not found")
	errInvalidPost = pkgErrors.NewHTTPError(400, "Invalid post")
	errLoadFailed  = pkgErrors.NewHTTPError(503, "Post store unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, post.ErrNotFound):
		return errNotFound
	case errors.Is(err, post.ErrInvalidPost):
		return errInvalidPost
	case errors.Is(err, post.ErrLoadFailed), errors.Is(err, post.ErrUpsertFailed):
		return errLoadFailed
	default:
		panic(err)
	}
}
