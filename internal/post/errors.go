package post

import "errors"

var (
	ErrNotFound     = errors.New("post: not found")
	ErrInvalidPost  = errors.New("post: invalid post")
	ErrUpsertFailed = errors.New("post: upsert failed")
	ErrLoadFailed   = errors.New("post: load failed")
)
