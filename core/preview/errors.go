package preview

import "errors"

// Errors returned by Store implementations. Backend failures wrap ErrStore.
var (
	ErrNotFound  = errors.New("preview not found")
	ErrEmptyHTML = errors.New("preview html is empty")
	ErrStore     = errors.New("preview store failure")
)
