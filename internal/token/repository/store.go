package repository

import (
	"context"
	"errors"

	"accounts-service/internal/store"
	"accounts-service/internal/token/domain"
)

// StoreRepository persists tokens in the "tokens" collection of a record store.
type StoreRepository struct {
	store store.Store
}

// NewStoreRepository returns a token repository backed by the given store.
func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

// GetByID returns the token for id, or nil if not found.
func (r *StoreRepository) GetByID(ctx context.Context, id string) (*domain.Token, error) {
	var t domain.Token
	if err := r.store.Read(ctx, store.CollectionTokens, id, &t); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Create persists the token under its id key.
func (r *StoreRepository) Create(ctx context.Context, t *domain.Token) error {
	return r.store.Create(ctx, store.CollectionTokens, t.ID, t)
}

// Update replaces the token record under its id key.
func (r *StoreRepository) Update(ctx context.Context, t *domain.Token) error {
	return r.store.Update(ctx, store.CollectionTokens, t.ID, t)
}

// Delete removes the token record for id.
func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionTokens, id)
}
