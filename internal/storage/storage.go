// Package storage defines the named-collection persistence contract shared
// by every service. Each domain entity lives in one collection, stored as a
// single JSON document; services read a whole collection, mutate it in
// memory, and write it back. There is no finer-grained locking or
// transaction primitive — the backend assumes a single logical caller, and
// each Store implementation only guarantees that individual reads and
// writes are atomic.
package storage

import (
	"context"
	"errors"
)

// Collection names. These are the stable keys under which each domain
// collection is persisted.
const (
	CollectionAccounts    = "accounts"
	CollectionRides       = "rides"
	CollectionReports     = "reports"
	CollectionDriverStats = "driver_stats"
	CollectionAuditLog    = "audit_logs"
	CollectionWalletTxs   = "wallet_txs"
	CollectionSession     = "session"
)

// ErrNotFound is returned when a collection has never been written. Callers
// that treat absence as normal (the session singleton, first-run seeding)
// branch on it with errors.Is.
var ErrNotFound = errors.New("collection not found")

// Store is the persistence contract. One instance is constructed at process
// start and passed by reference to every service — no ambient global.
type Store interface {
	// ReadCollection JSON-decodes the named collection into dest, which
	// must be a pointer. Returns ErrNotFound when the collection has never
	// been written.
	ReadCollection(ctx context.Context, name string, dest any) error

	// WriteCollection JSON-encodes src and replaces the named collection
	// wholesale.
	WriteCollection(ctx context.Context, name string, src any) error

	// DeleteCollection removes the named collection. Deleting an absent
	// collection is a no-op.
	DeleteCollection(ctx context.Context, name string) error

	// Has reports whether the named collection has ever been written.
	Has(ctx context.Context, name string) (bool, error)

	// Close releases underlying resources.
	Close() error
}
