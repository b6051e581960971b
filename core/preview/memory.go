package preview

import (
	"context"
	"sync"
	"time"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps previews in process memory. Expired entries are
// invisible to Get immediately and removed by Cleanup.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*Preview
	opts  options
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{
		items: make(map[string]*Preview),
		opts:  newOptions(opts),
	}
}

// Save stores html under a fresh id and returns a copy of the entry.
func (s *MemoryStore) Save(ctx context.Context, html string) (*Preview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if html == "" {
		return nil, ErrEmptyHTML
	}

	p := newPreview(html, s.opts)

	s.mu.Lock()
	s.items[p.ID] = p
	s.mu.Unlock()

	cp := *p
	return &cp, nil
}

// Get returns a copy of the entry. Expired entries yield ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Preview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	p, ok := s.items[id]
	s.mu.RUnlock()

	if !ok || !s.opts.now().Before(p.ExpiresAt) {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// Delete removes the entry or returns ErrNotFound.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// Len reports how many entries are held, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Cleanup removes expired entries and returns how many were dropped.
func (s *MemoryStore) Cleanup() int {
	now := s.opts.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, p := range s.items {
		if !now.Before(p.ExpiresAt) {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}

// Run calls Cleanup every interval until ctx is done. It returns ctx.Err().
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Cleanup()
		}
	}
}
