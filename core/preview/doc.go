// Package preview stores rendered documents under random IDs so they can be
// opened in a browser for a limited time.
//
//	store := preview.NewMemoryStore(preview.WithTTL(2 * time.Hour))
//	go store.Run(ctx, time.Minute) // drop expired entries
//
//	p, err := store.Save(ctx, html)
//	// share /previews/{p.ID} until p.ExpiresAt
//
// RedisStore offers the same contract across processes; expiry is handled
// by Redis itself. Unknown, malformed and expired IDs all yield ErrNotFound.
package preview
