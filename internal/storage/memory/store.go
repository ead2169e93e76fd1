// Package memory implements storage.Store on a mutex-guarded map. It is
// used by tests and by local runs that don't need persistence. Values are
// kept JSON-encoded so the round-trip behaves exactly like the persistent
// store.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"boleia/internal/storage"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

var _ storage.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		collections: make(map[string][]byte),
	}
}

func (s *Store) ReadCollection(ctx context.Context, name string, dest any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, exists := s.collections[name]
	if !exists {
		return storage.ErrNotFound
	}
	return json.Unmarshal(data, dest)
}

func (s *Store) WriteCollection(ctx context.Context, name string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[name] = data
	return nil
}

func (s *Store) DeleteCollection(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, name)
	return nil
}

func (s *Store) Has(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.collections[name]
	return exists, nil
}

func (s *Store) Close() error {
	return nil
}
