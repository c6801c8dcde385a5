package comment

import "errors"

var (
	ErrNotFound        = errors.New("comment: not found")
	ErrInvalidAction   = errors.New("comment: invalid action")
	ErrEmptySelection  = errors.New("comment: empty selection")
	ErrInvalidComment  = errors.New("comment: invalid comment")
	ErrInvalidCriteria = errors.New("comment: invalid filter criteria")
	ErrStoreFailed     = errors.New("comment: store unavailable")
)
