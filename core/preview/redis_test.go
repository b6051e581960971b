package preview_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blockmail/core/preview"
)

func TestRedisStore_InvalidIDSkipsNetwork(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := preview.NewRedisStore(client)

	_, err := store.Get(context.Background(), "../../etc/passwd")
	assert.ErrorIs(t, err, preview.ErrNotFound)
	assert.ErrorIs(t, store.Delete(context.Background(), "nope"), preview.ErrNotFound)

	_, err = store.Save(context.Background(), "")
	assert.ErrorIs(t, err, preview.ErrEmptyHTML)

	_, err = store.Save(context.Background(), "<p>x</p>")
	assert.ErrorIs(t, err, preview.ErrStore)
}

func TestRedisStore_Live(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	prefix := "blockmail:test:" + uuid.NewString() + ":"
	store := preview.NewRedisStore(client, preview.WithTTL(time.Minute), preview.WithKeyPrefix(prefix))

	p, err := store.Save(ctx, "<html>live</html>")
	require.NoError(t, err)

	ttl, err := client.TTL(ctx, prefix+p.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	got, err := store.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.HTML, got.HTML)
	assert.True(t, p.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Delete(ctx, p.ID))
	_, err = store.Get(ctx, p.ID)
	assert.ErrorIs(t, err, preview.ErrNotFound)
}
