package response

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/blockmail/core/handler"
)

// Templ creates an HTML response from a templ component with 200 OK status.
func Templ(component templ.Component) handler.Response {
	return TemplWithStatus(component, http.StatusOK)
}

// TemplWithStatus renders component with the request context. The component
// is rendered into a buffer first so a failed render leaves the response
// untouched for the error handler.
func TemplWithStatus(component templ.Component, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if component == nil {
			return fmt.Errorf("templ component render error: nil component")
		}

		var buf bytes.Buffer
		if err := component.Render(r.Context(), &buf); err != nil {
			return fmt.Errorf("templ component render error: %w", err)
		}

		return HTMLWithStatus(buf.String(), status)(w, r)
	}
}
