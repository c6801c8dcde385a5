package repository

import "errors"

var (
	ErrNotFound  = errors.New("post repository: not found")
	ErrCacheMiss = errors.New("post repository: cache miss")
)
