// Package store defines the record store contract: typed CRUD over
// (collection, key) pairs. Implementations guarantee per-key atomicity only;
// there are no cross-key transactions.
package store

import (
	"context"
	"errors"
)

// Collections used by the service. Keys are unique within a collection.
const (
	CollectionUsers  = "users"
	CollectionTokens = "tokens"
)

var (
	// ErrNotFound is returned when no record exists under (collection, key).
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned by Create when the key is already taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// Store persists one JSON-encodable record per (collection, key).
type Store interface {
	// Read decodes the record under (collection, key) into v.
	// Returns ErrNotFound if absent.
	Read(ctx context.Context, collection, key string, v any) error
	// Create persists v under (collection, key).
	// Returns ErrAlreadyExists if the key is taken.
	Create(ctx context.Context, collection, key string, v any) error
	// Update replaces the record under (collection, key).
	// Returns ErrNotFound if absent.
	Update(ctx context.Context, collection, key string, v any) error
	// Delete removes the record under (collection, key).
	// Returns ErrNotFound if absent.
	Delete(ctx context.Context, collection, key string) error
}
