package sanitizer

import (
	"strings"
)

// NormalizeEmail trims and lowercases an address and strips a mailto: prefix.
func NormalizeEmail(s string) string {
	s = TrimToLower(s)
	s = strings.TrimPrefix(s, "mailto:")
	return strings.Trim(s, "<>")
}

// PreventHeaderInjection removes CR and LF so a value cannot start a new mail header.
func PreventHeaderInjection(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}

// NormalizeTag turns a free-form label into a provider-safe message tag.
// Postmark limits tags to 1000 characters.
func NormalizeTag(s string) string {
	return MaxLength(ToSnakeCase(s), 1000)
}
