package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/foia/internal/adapters/sqlite"
)

func TestBlobStoreGetMissing(t *testing.T) {
	store := sqlite.NewBlobStore(setupTestDB(t))

	value, ok, err := store.Get(context.Background(), "no-such-key")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() ok = true for missing key, want false")
	}
	if value != "" {
		t.Errorf("Get() value = %q for missing key, want empty", value)
	}
}

func TestBlobStoreSetGet(t *testing.T) {
	store := sqlite.NewBlobStore(setupTestDB(t))
	ctx := context.Background()

	if err := store.Set(ctx, "requests", `[{"id":"REQ-001"}]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err := store.Get(ctx, "requests")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false after Set")
	}
	if value != `[{"id":"REQ-001"}]` {
		t.Errorf("Get() value = %q", value)
	}
}

func TestBlobStoreSetReplaces(t *testing.T) {
	store := sqlite.NewBlobStore(setupTestDB(t))
	ctx := context.Background()

	if err := store.Set(ctx, "requests", "first"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, "requests", "second"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err := store.Get(ctx, "requests")
	if err != nil || !ok {
		t.Fatalf("Get() = (%q, %v, %v)", value, ok, err)
	}
	if value != "second" {
		t.Errorf("Get() value = %q, want %q", value, "second")
	}
}

func TestBlobStoreKeysAreIndependent(t *testing.T) {
	store := sqlite.NewBlobStore(setupTestDB(t))
	ctx := context.Background()

	if err := store.Set(ctx, "a", "alpha"); err != nil {
		t.Fatalf("Set(a) error = %v", err)
	}
	if err := store.Set(ctx, "b", "beta"); err != nil {
		t.Fatalf("Set(b) error = %v", err)
	}

	a, _, _ := store.Get(ctx, "a")
	b, _, _ := store.Get(ctx, "b")
	if a != "alpha" || b != "beta" {
		t.Errorf("Get() = (%q, %q), want (alpha, beta)", a, b)
	}
}
