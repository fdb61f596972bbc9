package repository

import (
	"context"
	"errors"

	"accounts-service/internal/store"
	"accounts-service/internal/user/domain"
)

// StoreRepository persists users in the "users" collection of a record store.
type StoreRepository struct {
	store store.Store
}

// NewStoreRepository returns a user repository backed by the given store.
func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

// GetByPhone returns the user for phone, or nil if not found.
func (r *StoreRepository) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var u domain.User
	if err := r.store.Read(ctx, store.CollectionUsers, phone, &u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create persists the user under its phone key.
func (r *StoreRepository) Create(ctx context.Context, u *domain.User) error {
	return r.store.Create(ctx, store.CollectionUsers, u.Phone, u)
}

// Update replaces the user record under its phone key.
func (r *StoreRepository) Update(ctx context.Context, u *domain.User) error {
	return r.store.Update(ctx, store.CollectionUsers, u.Phone, u)
}

// Delete removes the user record for phone.
func (r *StoreRepository) Delete(ctx context.Context, phone string) error {
	return r.store.Delete(ctx, store.CollectionUsers, phone)
}
