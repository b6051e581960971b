// Package storage defines where rendered artifacts are kept and ships a
// local filesystem backend. The S3 backend lives in integration/storage/s3.
//
// # Basic Usage
//
//	store, err := storage.NewLocalStorage("./var/archive",
//		storage.WithBaseURL("https://mail.example.com/archive"),
//	)
//	if err != nil {
//		return err
//	}
//
//	obj, err := store.Put(ctx, "2025/03/digest.html", strings.NewReader(html), "text/html; charset=utf-8")
//	if err != nil {
//		return err
//	}
//	link := store.URL(obj.Key)
//
// # Keys
//
// Keys are slash separated and relative. CleanKey strips leading slashes,
// collapses "." segments and rejects ".." with ErrInvalidPath, so a key can
// never address anything outside the storage root or bucket prefix.
//
// # Errors
//
// Backends map their native failures onto the sentinels in this package.
// Missing objects are always reported as ErrFileNotFound.
package storage
