package blocks

import "errors"

// ErrInvalidDocument is returned when an editor document cannot be decoded.
// Rendering itself never fails.
var ErrInvalidDocument = errors.New("invalid document")
