package storage_test

import (
	"context"
	"testing"

	"boleia/internal/domain/entities"
	"boleia/internal/storage"
	"boleia/internal/storage/memory"
)

func TestSeed_FirstRun(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	if err := storage.Seed(ctx, store); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var accounts []entities.Account
	if err := store.ReadCollection(ctx, storage.CollectionAccounts, &accounts); err != nil {
		t.Fatalf("ReadCollection failed: %v", err)
	}
	if len(accounts) != 4 {
		t.Errorf("Expected 4 seeded accounts, got %d", len(accounts))
	}

	var audit []entities.AuditEntry
	if err := store.ReadCollection(ctx, storage.CollectionAuditLog, &audit); err != nil {
		t.Fatalf("ReadCollection failed: %v", err)
	}
	if len(audit) != 0 {
		t.Errorf("Expected empty audit log, got %d entries", len(audit))
	}

	// The session singleton is never seeded
	exists, err := store.Has(ctx, storage.CollectionSession)
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if exists {
		t.Error("Expected no seeded session")
	}
}

func TestSeed_PreservesExistingState(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	if err := storage.Seed(ctx, store); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	// Simulate accumulated state, then a restart
	extra := entities.Account{ID: "x1", Name: "Extra", Email: "x@example.com", Role: entities.RolePassenger}
	var accounts []entities.Account
	if err := store.ReadCollection(ctx, storage.CollectionAccounts, &accounts); err != nil {
		t.Fatalf("ReadCollection failed: %v", err)
	}
	accounts = append(accounts, extra)
	if err := store.WriteCollection(ctx, storage.CollectionAccounts, accounts); err != nil {
		t.Fatalf("WriteCollection failed: %v", err)
	}

	if err := storage.Seed(ctx, store); err != nil {
		t.Fatalf("Second Seed failed: %v", err)
	}

	var after []entities.Account
	if err := store.ReadCollection(ctx, storage.CollectionAccounts, &after); err != nil {
		t.Fatalf("ReadCollection failed: %v", err)
	}
	if len(after) != 5 {
		t.Errorf("Expected re-seed to preserve 5 accounts, got %d", len(after))
	}
}
