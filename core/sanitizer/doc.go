// Package sanitizer cleans user supplied strings before they reach mail
// headers, storage keys or logs.
//
// The package exposes plain string helpers (Trim, SingleLine, StripHTML,
// NormalizeEmail, PreventHeaderInjection and friends) and a tag driven
// SanitizeStruct that applies a comma separated pipeline of named
// sanitizers to every tagged string field, recursing into nested structs,
// pointers and string slices.
//
// # Struct Tags
//
//	type SendRequest struct {
//		To      string `sanitize:"email"`
//		Subject string `sanitize:"subject,max:200"`
//		Tag     string `sanitize:"tag"`
//		Body    string // untagged fields are left alone
//	}
//
//	if err := sanitizer.SanitizeStruct(&req); err != nil {
//		return err
//	}
//
// Built-in names: trim, lower, trim_lower, snake, kebab, single_line,
// no_spaces, no_control, strip_html, alphanum, email, header, tag, subject,
// text and max:N. An unregistered name fails with ErrUnknownSanitizer and a
// malformed max with ErrInvalidTag. A tag of "-" skips the field.
//
// # Custom Sanitizers
//
//	sanitizer.RegisterSanitizer("campaign", func(s string) string {
//		return "cmp_" + sanitizer.ToSnakeCase(s)
//	})
//
// The registry is safe for concurrent use.
package sanitizer
