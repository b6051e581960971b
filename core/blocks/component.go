package blocks

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component exposes a rendered document as a templ component so it can be
// served or rendered by anything that accepts templ.Component.
func Component(doc Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := io.WriteString(w, doc.Render())
		return err
	})
}
