package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
)

// Storage keeps rendered artifacts (archived email bodies, exported
// previews) under slash separated keys.
type Storage interface {
	// Put writes r under key, replacing any existing object.
	Put(ctx context.Context, key string, r io.Reader, contentType string) (*Object, error)
	// Get opens the object. Callers must close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) bool
	// URL returns where the object can be fetched from. It does not check existence.
	URL(key string) string
}

// Object describes a stored artifact.
type Object struct {
	Key         string
	ContentType string
	Size        int64
}

// CleanKey normalizes a key and rejects empty keys and keys that escape the root.
func CleanKey(key string) (string, error) {
	key = strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidPath)
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
		}
	}

	cleaned := strings.TrimPrefix(path.Clean("/"+key), "/")
	if cleaned == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}
	return cleaned, nil
}

// JoinURL joins base and key with exactly one slash.
func JoinURL(base, key string) string {
	key = strings.TrimPrefix(key, "/")
	if base == "" {
		return "/" + key
	}
	return strings.TrimSuffix(base, "/") + "/" + key
}
