package services

import (
	"context"
	"testing"
)

func TestExportService_Snapshot(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	snapshot, err := b.export.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if len(snapshot.Accounts) != 4 {
		t.Errorf("Expected 4 seeded accounts, got %d", len(snapshot.Accounts))
	}
	if len(snapshot.Rides) != 1 {
		t.Errorf("Expected 1 seeded ride, got %d", len(snapshot.Rides))
	}
	if len(snapshot.Reports) != 2 {
		t.Errorf("Expected 2 seeded reports, got %d", len(snapshot.Reports))
	}
	if snapshot.ExportedAt.IsZero() {
		t.Error("Expected export timestamp to be set")
	}

	// Export is read-only: a second snapshot sees identical state
	again, err := b.export.Export(ctx)
	if err != nil {
		t.Fatalf("Second export failed: %v", err)
	}
	if len(again.Accounts) != len(snapshot.Accounts) || len(again.Rides) != len(snapshot.Rides) {
		t.Error("Expected export to leave collections untouched")
	}
}
