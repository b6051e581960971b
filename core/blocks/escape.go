package blocks

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces & < > " ' with their entities in a single pass.
// It is not idempotent: escaping an escaped string encodes the ampersands again.
func Escape(text string) string {
	return htmlEscaper.Replace(text)
}
