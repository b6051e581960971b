package cli

import "errors"

var (
	ErrUnknownProvider     = errors.New("unknown email provider")
	ErrUnknownStorage      = errors.New("unknown storage driver")
	ErrUnknownPreviewStore = errors.New("unknown preview store")
	ErrReadInput           = errors.New("failed to read input")
	ErrWriteOutput         = errors.New("failed to write output")
)
