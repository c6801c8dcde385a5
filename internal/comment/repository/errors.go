package repository

import "errors"

var (
	ErrNotFound     = errors.New("repository: comment not found")
	ErrCacheMiss    = errors.New("repository: cache miss")
	ErrInvalidFlag  = errors.New("repository: invalid flag column")
	ErrUpsertFailed = errors.New("repository: failed to upsert comments")
)
