package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var _ Storage = (*LocalStorage)(nil)

// LocalStorage stores objects as files below a root directory.
type LocalStorage struct {
	root     string
	baseURL  string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// LocalOption configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithBaseURL sets the prefix used by URL. Without it URL returns "/<key>".
func WithBaseURL(baseURL string) LocalOption {
	return func(s *LocalStorage) { s.baseURL = baseURL }
}

// WithPermissions overrides directory and file modes.
func WithPermissions(dir, file os.FileMode) LocalOption {
	return func(s *LocalStorage) {
		s.dirPerm = dir
		s.filePerm = file
	}
}

// NewLocalStorage creates the root directory if needed.
func NewLocalStorage(root string, opts ...LocalOption) (*LocalStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: root directory is required", ErrInvalidConfig)
	}

	s := &LocalStorage{root: root, dirPerm: 0o755, filePerm: 0o644}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(root, s.dirPerm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return s, nil
}

// Put writes to a temporary file and renames it into place, so readers
// never observe a partial object.
func (s *LocalStorage) Put(ctx context.Context, key string, r io.Reader, contentType string) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}
	key, err := CleanKey(key)
	if err != nil {
		return nil, err
	}

	target := s.path(key)
	if err := os.MkdirAll(filepath.Dir(target), s.dirPerm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	size, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := os.Chmod(tmp.Name(), s.filePerm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}

	return &Object{Key: key, ContentType: contentType, Size: size}, nil
}

// Get opens the file stored under key. The caller closes it.
func (s *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}
	key, err := CleanKey(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, key)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	return f, nil
}

// Delete removes the file stored under key.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}
	key, err := CleanKey(key)
	if err != nil {
		return err
	}

	if err := os.Remove(s.path(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, key)
		}
		return fmt.Errorf("%w: %v", ErrFailedToDelete, err)
	}
	return nil
}

// Exists reports whether key names a regular file.
func (s *LocalStorage) Exists(_ context.Context, key string) bool {
	key, err := CleanKey(key)
	if err != nil {
		return false
	}
	info, err := os.Stat(s.path(key))
	return err == nil && !info.IsDir()
}

// URL joins the configured base URL and key.
func (s *LocalStorage) URL(key string) string {
	return JoinURL(s.baseURL, key)
}

func (s *LocalStorage) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}
