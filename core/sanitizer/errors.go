package sanitizer

import "errors"

// Errors returned by SanitizeStruct.
var (
	ErrNotStructPointer = errors.New("sanitizer: must pass a pointer to struct")
	ErrUnknownSanitizer = errors.New("sanitizer: unknown sanitizer")
	ErrInvalidTag       = errors.New("sanitizer: invalid tag")
)
