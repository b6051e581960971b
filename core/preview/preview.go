package preview

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a preview stays retrievable when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// Preview is a rendered document stored for later viewing.
type Preview struct {
	ID        string    `json:"id"`
	HTML      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store keeps previews for a limited time.
type Store interface {
	// Save stores html under a new random ID.
	Save(ctx context.Context, html string) (*Preview, error)
	// Get returns ErrNotFound for unknown, malformed or expired IDs.
	Get(ctx context.Context, id string) (*Preview, error)
	Delete(ctx context.Context, id string) error
}

// Option configures a Store.
type Option func(*options)

type options struct {
	ttl       time.Duration
	now       func() time.Time
	keyPrefix string
}

func newOptions(opts []Option) options {
	o := options{ttl: DefaultTTL, now: time.Now, keyPrefix: "blockmail:preview:"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTTL sets the preview lifetime. Non-positive values keep the default.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithKeyPrefix sets the Redis key prefix. Ignored by the memory store.
func WithKeyPrefix(prefix string) Option {
	return func(o *options) { o.keyPrefix = prefix }
}

func newPreview(html string, o options) *Preview {
	now := o.now().UTC()
	return &Preview{
		ID:        uuid.NewString(),
		HTML:      html,
		CreatedAt: now,
		ExpiresAt: now.Add(o.ttl),
	}
}

// validID reports whether id has the UUID shape produced by Save.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
