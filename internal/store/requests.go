// Package store maintains the durable request collection over the key-value
// blob boundary. The whole collection is one JSON blob under a single key,
// written in a single Set.
//
// Persistence failures are absorbed here: Load returns an empty collection
// and Save returns nothing. The caller's in-memory state stays authoritative
// for the session even when the backing store is broken, so the tool remains
// usable; failures are logged, never propagated.
package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/example/foia/internal/models"
	"github.com/example/foia/internal/ports/secondary"
)

// StorageKey is the single key holding the serialized request collection.
const StorageKey = "public-records-requests"

// Requests persists the request collection through a BlobStore.
type Requests struct {
	blobs secondary.BlobStore
	key   string
}

// NewRequests creates a request store over the given blob store.
func NewRequests(blobs secondary.BlobStore) *Requests {
	return &Requests{blobs: blobs, key: StorageKey}
}

// Load returns all stored requests. Date fields round-trip through their
// RFC 3339 text form, including nested note and document dates. Any read or
// deserialization error is logged and yields an empty collection.
func (s *Requests) Load(ctx context.Context) []models.Request {
	value, ok, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		log.Printf("failed to load requests: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var requests []models.Request
	if err := json.Unmarshal([]byte(value), &requests); err != nil {
		log.Printf("failed to parse stored requests: %v", err)
		return nil
	}

	return requests
}

// Save replaces the entire stored collection in one write. Failures are
// logged, not returned.
func (s *Requests) Save(ctx context.Context, requests []models.Request) {
	if requests == nil {
		requests = []models.Request{}
	}

	data, err := json.Marshal(requests)
	if err != nil {
		log.Printf("failed to serialize requests: %v", err)
		return
	}

	if err := s.blobs.Set(ctx, s.key, string(data)); err != nil {
		log.Printf("failed to save requests: %v", err)
	}
}

// DeleteByID removes the request with the given id via read-modify-write.
// A single writer is assumed; concurrent writers can clobber each other's
// last write, an accepted limitation of the design.
func (s *Requests) DeleteByID(ctx context.Context, id string) {
	requests := s.Load(ctx)
	filtered := make([]models.Request, 0, len(requests))
	for _, r := range requests {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	s.Save(ctx, filtered)
}
