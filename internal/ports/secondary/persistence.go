// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// BlobStore is the persistence boundary: a key-value store of text blobs.
// The request collection is serialized as a single JSON blob under one key;
// nothing in the core requires more than this.
type BlobStore interface {
	// Get returns the blob stored under key. The bool reports whether the
	// key was present; an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value in a single
	// write.
	Set(ctx context.Context, key, value string) error
}
