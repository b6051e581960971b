package logger

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Helpers that may receive an empty value return the zero slog.Attr,
// which handlers drop, so callers never need a nil or empty check.

func optionalString(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}

// ============================================================================
// Errors
// ============================================================================

// Error logs err under "error". A nil error is dropped.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errs under "errors", keyed by their position
// in the argument list.
func Errors(errs ...error) slog.Attr {
	var attrs []slog.Attr
	for i, err := range errs {
		if err != nil {
			attrs = append(attrs, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(attrs) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Generic metadata
// ============================================================================

// Key logs an arbitrary value. A nil value is dropped.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// Component names the subsystem that emitted the record.
func Component(name string) slog.Attr { return slog.String("component", name) }

// Elapsed logs the time passed since start.
func Elapsed(start time.Time) slog.Attr { return slog.Duration("elapsed", time.Since(start)) }

// ============================================================================
// HTTP
// ============================================================================

// RequestID logs the request identifier. An empty id is dropped.
func RequestID(id string) slog.Attr { return optionalString("request_id", id) }

// Method logs the HTTP method.
func Method(method string) slog.Attr { return slog.String("method", method) }

// Path logs the request path.
func Path(path string) slog.Attr { return slog.String("path", path) }

// StatusCode logs the response status.
func StatusCode(code int) slog.Attr { return slog.Int("status_code", code) }

// ClientIP logs the remote address. An empty value is dropped.
func ClientIP(ip string) slog.Attr { return optionalString("client_ip", ip) }

// BytesOut logs the size of the response body.
func BytesOut(n int64) slog.Attr { return slog.Int64("bytes_out", n) }

// ============================================================================
// Rendering and delivery
// ============================================================================

// BlockType logs a content block type.
func BlockType(t string) slog.Attr { return slog.String("block_type", t) }

// Blocks logs how many top-level blocks a document carries.
func Blocks(n int) slog.Attr { return slog.Int("blocks", n) }

// Bytes logs a payload size.
func Bytes(n int) slog.Attr { return slog.Int("bytes", n) }

// Tag logs a message tag. An empty tag is dropped.
func Tag(tag string) slog.Attr { return optionalString("tag", tag) }

// PreviewID logs a stored preview identifier. An empty id is dropped.
func PreviewID(id string) slog.Attr { return optionalString("preview_id", id) }

// Recipient logs an address with the local part masked:
// "jane@example.com" is logged as "j***@example.com".
func Recipient(address string) slog.Attr {
	if address == "" {
		return slog.Attr{}
	}
	local, domain, ok := strings.Cut(address, "@")
	if !ok || local == "" {
		return slog.String("recipient", "***")
	}
	first := []rune(local)[0]
	return slog.String("recipient", string(first)+"***@"+domain)
}
