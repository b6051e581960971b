package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/blockmail/core/storage"
)

// apiErrorCodes maps S3 error codes onto storage sentinels.
var apiErrorCodes = map[string]error{
	"NoSuchKey":          storage.ErrFileNotFound,
	"NotFound":           storage.ErrFileNotFound,
	"NoSuchBucket":       storage.ErrBucketNotFound,
	"AccessDenied":       storage.ErrAccessDenied,
	"RequestTimeout":     storage.ErrRequestTimeout,
	"SlowDown":           storage.ErrServiceUnavailable,
	"ServiceUnavailable": storage.ErrServiceUnavailable,
	"InvalidObjectState": storage.ErrInvalidObjectState,
}

// wrapError translates an SDK failure for op into a storage sentinel while
// keeping the original error in the chain.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var sentinel error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		sentinel = storage.ErrOperationTimeout
	case errors.Is(err, context.Canceled):
		sentinel = storage.ErrOperationCanceled
	case errors.As(err, new(*types.NoSuchKey)), errors.As(err, new(*types.NotFound)):
		sentinel = storage.ErrFileNotFound
	case errors.As(err, new(*types.NoSuchBucket)):
		sentinel = storage.ErrBucketNotFound
	default:
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			sentinel = apiErrorCodes[apiErr.ErrorCode()]
		}
	}

	if sentinel == nil {
		return fmt.Errorf("s3 %s: %w", op, err)
	}
	return fmt.Errorf("%w: s3 %s: %w", sentinel, op, err)
}
