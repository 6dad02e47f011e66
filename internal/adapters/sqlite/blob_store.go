// Package sqlite contains SQLite implementations of the secondary ports.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/foia/internal/ports/secondary"
)

// BlobStore implements secondary.BlobStore over the blobs key-value table.
type BlobStore struct {
	db *sql.DB
}

// NewBlobStore creates a new SQLite blob store.
func NewBlobStore(db *sql.DB) *BlobStore {
	return &BlobStore{db: db}
}

// Get returns the blob stored under key. An absent key returns ("", false, nil).
func (s *BlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM blobs WHERE key = ?",
		key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read blob %s: %w", key, err)
	}

	return value, true, nil
}

// Set stores value under key, replacing any previous value in one statement.
func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}

	return nil
}

// Ensure BlobStore implements the interface
var _ secondary.BlobStore = (*BlobStore)(nil)
