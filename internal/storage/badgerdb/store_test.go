package badgerdb

import (
	"context"
	"errors"
	"testing"

	"boleia/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(Config{InMemory: true})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_ReadWriteRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	written := []record{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	if err := store.WriteCollection(ctx, "records", written); err != nil {
		t.Fatalf("WriteCollection failed: %v", err)
	}

	var read []record
	if err := store.ReadCollection(ctx, "records", &read); err != nil {
		t.Fatalf("ReadCollection failed: %v", err)
	}
	if len(read) != 2 || read[0].Name != "a" || read[1].Count != 2 {
		t.Errorf("Round trip mismatch: %+v", read)
	}
}

func TestStore_ReadMissingCollection(t *testing.T) {
	store := openTestStore(t)

	var dest []string
	err := store.ReadCollection(context.Background(), "never_written", &dest)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected storage.ErrNotFound, got %v", err)
	}
}

func TestStore_HasAndDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	exists, err := store.Has(ctx, "items")
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if exists {
		t.Error("Expected Has false before first write")
	}

	if err := store.WriteCollection(ctx, "items", []int{1, 2, 3}); err != nil {
		t.Fatalf("WriteCollection failed: %v", err)
	}

	exists, err = store.Has(ctx, "items")
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if !exists {
		t.Error("Expected Has true after write")
	}

	if err := store.DeleteCollection(ctx, "items"); err != nil {
		t.Fatalf("DeleteCollection failed: %v", err)
	}

	var dest []int
	if err := store.ReadCollection(ctx, "items", &dest); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an absent collection is a no-op
	if err := store.DeleteCollection(ctx, "items"); err != nil {
		t.Errorf("Expected repeated delete to succeed, got %v", err)
	}
}

func TestStore_WriteReplacesWholesale(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.WriteCollection(ctx, "items", []int{1, 2, 3}); err != nil {
		t.Fatalf("WriteCollection failed: %v", err)
	}
	if err := store.WriteCollection(ctx, "items", []int{9}); err != nil {
		t.Fatalf("WriteCollection failed: %v", err)
	}

	var read []int
	if err := store.ReadCollection(ctx, "items", &read); err != nil {
		t.Fatalf("ReadCollection failed: %v", err)
	}
	if len(read) != 1 || read[0] != 9 {
		t.Errorf("Expected replacement [9], got %v", read)
	}
}
