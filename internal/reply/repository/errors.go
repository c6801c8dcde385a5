package repository

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrCommentNotFound = errors.New("comment not found")
)
