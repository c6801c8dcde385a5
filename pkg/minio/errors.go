package minio

import (
	"errors"
	"fmt"
)

const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodePermission     = "PERMISSION_DENIED"
	ErrCodeConnection     = "CONNECTION_ERROR"
)

type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("minio %s: %s", e.Operation, e.Message)
	}
	return "minio: " + e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func NewInvalidInputError(msg string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: msg}
}

func NewObjectNotFoundError(object string) *StorageError {
	return &StorageError{Code: ErrCodeNotFound, Message: "object not found: " + object}
}

func NewConnectionError(err error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "connection failed", Cause: err}
}

// IsNotFound reports whether err is a missing bucket or object.
func IsNotFound(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && (se.Code == ErrCodeNotFound || se.Code == ErrCodeBucketNotFound)
}
