package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// Trim removes leading and trailing whitespace.
func Trim(s string) string { return strings.TrimSpace(s) }

// ToLower lowercases s.
func ToLower(s string) string { return strings.ToLower(s) }

// TrimToLower trims s and lowercases it.
func TrimToLower(s string) string { return ToLower(Trim(s)) }

// ToSnakeCase collapses runs of separators into a single underscore.
func ToSnakeCase(s string) string {
	return joinWords(s, '_')
}

// ToKebabCase collapses runs of separators into a single dash.
func ToKebabCase(s string) string {
	return joinWords(s, '-')
}

func joinWords(s string, sep rune) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevSep := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSep = false
			continue
		}
		if !prevSep {
			b.WriteRune(sep)
			prevSep = true
		}
	}

	return strings.Trim(b.String(), string(sep))
}

// MaxLength cuts s to at most n runes. n <= 0 yields "".
func MaxLength(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// RemoveExtraWhitespace collapses every whitespace run, line breaks
// included, into one space and trims both ends.
func RemoveExtraWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveControlChars drops control characters other than \t, \n and \r.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == '\n', r == '\r':
			return r
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// StripHTML drops anything that looks like a tag and unescapes entities.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTag.ReplaceAllString(s, ""))
}

// KeepAlphanumeric keeps letters, digits and spaces.
func KeepAlphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// SingleLine folds a multi-line value onto one line.
func SingleLine(s string) string {
	return RemoveExtraWhitespace(s)
}
