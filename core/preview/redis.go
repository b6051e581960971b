package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var _ Store = (*RedisStore)(nil)

// RedisStore keeps previews as JSON values that Redis expires on its own.
type RedisStore struct {
	client redis.UniversalClient
	opts   options
}

// NewRedisStore wraps a connected client.
func NewRedisStore(client redis.UniversalClient, opts ...Option) *RedisStore {
	return &RedisStore{client: client, opts: newOptions(opts)}
}

// Save writes the entry as JSON with the configured TTL.
func (s *RedisStore) Save(ctx context.Context, html string) (*Preview, error) {
	if html == "" {
		return nil, ErrEmptyHTML
	}

	p := newPreview(html, s.opts)
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}

	if err := s.client.Set(ctx, s.key(p.ID), data, s.opts.ttl).Err(); err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	return p, nil
}

// Get loads the entry. Malformed ids and missing keys yield ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (*Preview, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}

	var p Preview
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Join(ErrStore, fmt.Errorf("decode preview %s: %w", id, err))
	}
	return &p, nil
}

// Delete removes the entry or returns ErrNotFound.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}

	n, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) key(id string) string {
	return s.opts.keyPrefix + id
}
