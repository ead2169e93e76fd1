package services

import (
	"context"
	"errors"
	"time"

	"boleia/internal/domain/entities"
	"boleia/internal/storage"
)

// Snapshot is a read-only dump of the persisted collections, for
// diagnostics. The session singleton is deliberately excluded.
type Snapshot struct {
	Accounts   []entities.Account           `json:"accounts"`
	Rides      []entities.Ride              `json:"rides"`
	Reports    []entities.IncidentReport    `json:"reports"`
	Audit      []entities.AuditEntry        `json:"audit"`
	Wallet     []entities.WalletTransaction `json:"wallet"`
	ExportedAt time.Time                    `json:"exported_at"`
}

// ExportService produces database snapshots. It never mutates anything.
type ExportService struct {
	store storage.Store
}

func NewExportService(store storage.Store) *ExportService {
	return &ExportService{store: store}
}

// Export reads every collection and stamps the result. Collections that
// were never written come back empty rather than failing the export.
func (s *ExportService) Export(ctx context.Context) (*Snapshot, error) {
	snapshot := &Snapshot{ExportedAt: time.Now()}

	reads := []struct {
		name string
		dest any
	}{
		{storage.CollectionAccounts, &snapshot.Accounts},
		{storage.CollectionRides, &snapshot.Rides},
		{storage.CollectionReports, &snapshot.Reports},
		{storage.CollectionAuditLog, &snapshot.Audit},
		{storage.CollectionWalletTxs, &snapshot.Wallet},
	}

	for _, r := range reads {
		if err := s.store.ReadCollection(ctx, r.name, r.dest); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}

	return snapshot, nil
}
