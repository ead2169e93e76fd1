package services

import (
	"context"
	"errors"
	"time"

	"boleia/internal/domain/entities"
	"boleia/internal/storage"
	"boleia/pkg/utils"
)

// AuditService owns the bounded audit trail. Append is internal plumbing —
// only other services call it; the HTTP surface exposes Entries to admins.
type AuditService struct {
	store      storage.Store
	maxEntries int
}

func NewAuditService(store storage.Store, maxEntries int) *AuditService {
	return &AuditService{
		store:      store,
		maxEntries: maxEntries,
	}
}

// Append records one security-relevant action. Entries are stored
// newest-first and trimmed after every insert, so the collection never
// exceeds maxEntries: the oldest entry is evicted first.
func (s *AuditService) Append(ctx context.Context, actorID, action, entityID, detail string) error {
	var entries []entities.AuditEntry
	if err := s.store.ReadCollection(ctx, storage.CollectionAuditLog, &entries); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	entry := entities.AuditEntry{
		ID:        utils.GenerateID(),
		ActorID:   actorID,
		Action:    action,
		EntityID:  entityID,
		Detail:    detail,
		Timestamp: time.Now(),
	}

	entries = append([]entities.AuditEntry{entry}, entries...)
	if len(entries) > s.maxEntries {
		entries = entries[:s.maxEntries]
	}

	return s.store.WriteCollection(ctx, storage.CollectionAuditLog, entries)
}

// Entries returns the retained audit trail, newest first.
func (s *AuditService) Entries(ctx context.Context) ([]entities.AuditEntry, error) {
	var entries []entities.AuditEntry
	if err := s.store.ReadCollection(ctx, storage.CollectionAuditLog, &entries); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return entries, nil
}
