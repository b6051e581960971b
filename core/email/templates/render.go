package templates

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/blockmail/core/email"
)

// Render writes component into a buffer and returns it as an email body.
// A component that produces no output is reported as ErrRenderFailed.
func Render(ctx context.Context, component templ.Component) (string, error) {
	if component == nil {
		return "", fmt.Errorf("%w: nil component", email.ErrRenderFailed)
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("%w: %w", email.ErrRenderFailed, err)
	}
	if buf.Len() == 0 {
		return "", fmt.Errorf("%w: empty output", email.ErrRenderFailed)
	}

	return buf.String(), nil
}
