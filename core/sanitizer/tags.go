package sanitizer

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"lower":       ToLower,
		"trim_lower":  TrimToLower,
		"snake":       ToSnakeCase,
		"kebab":       ToKebabCase,
		"single_line": SingleLine,
		"no_spaces":   RemoveExtraWhitespace,
		"no_control":  RemoveControlChars,
		"strip_html":  StripHTML,
		"alphanum":    KeepAlphanumeric,

		"email":  NormalizeEmail,
		"header": PreventHeaderInjection,
		"tag":    NormalizeTag,

		"subject": func(s string) string {
			return SingleLine(RemoveControlChars(s))
		},
		"text": func(s string) string {
			return RemoveExtraWhitespace(Trim(s))
		},
	}
)

// RegisterSanitizer adds fn to the registry under name, replacing any
// existing sanitizer with that name.
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SanitizeStruct rewrites the string fields of the struct v points to,
// following their `sanitize` tags. Names in a tag run left to right, and
// "max:N" truncates to N runes. Nested structs, struct pointers, *string
// fields and []string fields are handled; a "-" tag skips the field.
// An unregistered name fails with ErrUnknownSanitizer.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	return sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) error {
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		tag := rt.Field(i).Tag.Get("sanitize")
		if !field.CanSet() || tag == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}
			field = field.Elem()
		}

		var err error
		switch field.Kind() {
		case reflect.String:
			err = sanitizeValue(field, tag)
		case reflect.Struct:
			err = sanitizeFields(field)
		case reflect.Slice:
			if field.Type().Elem().Kind() != reflect.String {
				continue
			}
			for j := range field.Len() {
				if err = sanitizeValue(field.Index(j), tag); err != nil {
					break
				}
			}
		}
		if err != nil {
			return fmt.Errorf("%s: %w", rt.Field(i).Name, err)
		}
	}

	return nil
}

func sanitizeValue(v reflect.Value, tag string) error {
	if tag == "" {
		return nil
	}
	out, err := apply(v.String(), tag)
	if err != nil {
		return err
	}
	v.SetString(out)
	return nil
}

func apply(value, tag string) (string, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for name := range strings.SplitSeq(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if limit, ok := strings.CutPrefix(name, "max:"); ok {
			n, err := strconv.Atoi(limit)
			if err != nil || n < 0 {
				return "", fmt.Errorf("%w: %q", ErrInvalidTag, name)
			}
			if n > 0 {
				value = MaxLength(value, n)
			}
			continue
		}

		fn, ok := registry[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
		}
		value = fn(value)
	}

	return value, nil
}
