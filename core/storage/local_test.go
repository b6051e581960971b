package storage_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blockmail/core/storage"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	store, err := storage.NewLocalStorage(root, storage.WithBaseURL("https://cdn.example.com/archive/"))
	require.NoError(t, err)

	obj, err := store.Put(ctx, "/2025/03/digest.html", strings.NewReader("<p>hi</p>"), "text/html")
	require.NoError(t, err)
	assert.Equal(t, "2025/03/digest.html", obj.Key)
	assert.EqualValues(t, 9, obj.Size)
	assert.Equal(t, "text/html", obj.ContentType)

	assert.True(t, store.Exists(ctx, obj.Key))
	assert.FileExists(t, filepath.Join(root, "2025", "03", "digest.html"))
	assert.Equal(t, "https://cdn.example.com/archive/2025/03/digest.html", store.URL(obj.Key))

	rc, err := store.Get(ctx, obj.Key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))

	_, err = store.Put(ctx, obj.Key, strings.NewReader("<p>v2</p>"), "text/html")
	require.NoError(t, err)
	rc, err = store.Get(ctx, obj.Key)
	require.NoError(t, err)
	data, _ = io.ReadAll(rc)
	_ = rc.Close()
	assert.Equal(t, "<p>v2</p>", string(data))

	require.NoError(t, store.Delete(ctx, obj.Key))
	assert.False(t, store.Exists(ctx, obj.Key))

	entries, err := os.ReadDir(filepath.Join(root, "2025", "03"))
	require.NoError(t, err)
	assert.Empty(t, entries, "no temp files left behind")
}

func TestLocalStorage_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(ctx, "missing.html")
	assert.ErrorIs(t, err, storage.ErrFileNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "missing.html"), storage.ErrFileNotFound)

	_, err = store.Put(ctx, "../escape.html", strings.NewReader("x"), "text/html")
	assert.ErrorIs(t, err, storage.ErrInvalidPath)
	assert.False(t, store.Exists(ctx, "../escape.html"))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = store.Put(canceled, "a.html", strings.NewReader("x"), "text/html")
	assert.ErrorIs(t, err, storage.ErrOperationCanceled)

	_, err = storage.NewLocalStorage("")
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)
}

func TestLocalStorage_URLWithoutBase(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/previews/abc.html", store.URL("previews/abc.html"))
}

func TestCleanKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "a/b.html", want: "a/b.html"},
		{in: "/a//b.html", want: "a/b.html"},
		{in: "./a/./b.html", want: "a/b.html"},
		{in: `a\b.html`, want: "a/b.html"},
		{in: "", wantErr: true},
		{in: "/", wantErr: true},
		{in: "../a", wantErr: true},
		{in: "a/../../b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := storage.CleanKey(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, storage.ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
