package services

import (
	"context"
	"testing"

	"boleia/internal/config"
	"boleia/internal/storage"
	"boleia/internal/storage/memory"
)

// backend bundles every service over one shared in-memory store, mirroring
// how cmd/server wires the real thing.
type backend struct {
	store   storage.Store
	audit   *AuditService
	wallet  *WalletService
	auth    *AuthService
	rides   *RideService
	rewards *RewardsService
	reports *ReportService
	export  *ExportService
}

func setupBackend(t *testing.T) *backend {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Latency = config.LatencyConfig{} // no simulated delays in tests

	store := memory.NewStore()
	if err := storage.Seed(context.Background(), store); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	audit := NewAuditService(store, cfg.Audit.MaxEntries)
	wallet := NewWalletService(store)

	return &backend{
		store:   store,
		audit:   audit,
		wallet:  wallet,
		auth:    NewAuthService(store, wallet, audit, cfg),
		rides:   NewRideService(store, wallet, audit, cfg),
		rewards: NewRewardsService(store, cfg.Rewards),
		reports: NewReportService(store, audit),
		export:  NewExportService(store),
	}
}

// auditCount tallies retained audit entries carrying the given action tag.
func auditCount(t *testing.T, b *backend, action string) int {
	t.Helper()

	entries, err := b.audit.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}

	count := 0
	for _, e := range entries {
		if e.Action == action {
			count++
		}
	}
	return count
}
