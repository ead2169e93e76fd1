// Package services implements the backend facade: every operation the
// presentation layer may invoke lives here. Each service owns one domain
// concern and shares the same storage.Store instance; cross-cutting writes
// (wallet credits, audit entries) go through the owning service rather
// than touching the store directly.
package services

import (
	"context"
	"errors"

	"boleia/internal/domain/entities"
	"boleia/internal/storage"
)

// currentSession loads the persisted session holder, or nil when nobody is
// logged in. Absence is a normal state, not an error.
func currentSession(ctx context.Context, store storage.Store) (*entities.Account, error) {
	var account entities.Account
	err := store.ReadCollection(ctx, storage.CollectionSession, &account)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func saveSession(ctx context.Context, store storage.Store, account *entities.Account) error {
	return store.WriteCollection(ctx, storage.CollectionSession, account)
}

func clearSession(ctx context.Context, store storage.Store) error {
	return store.DeleteCollection(ctx, storage.CollectionSession)
}
