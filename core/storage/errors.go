package storage

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid storage configuration")
	ErrInvalidPath     = errors.New("invalid path")
	ErrFileNotFound    = errors.New("file not found")
	ErrFailedToWrite   = errors.New("failed to write file")
	ErrFailedToRead    = errors.New("failed to read file")
	ErrFailedToDelete  = errors.New("failed to delete file")
	ErrStorageDisabled = errors.New("storage is disabled")

	// Remote backend failures.
	ErrOperationTimeout   = errors.New("storage operation timed out")
	ErrOperationCanceled  = errors.New("storage operation canceled")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timeout")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrInvalidObjectState = errors.New("invalid object state")
)
