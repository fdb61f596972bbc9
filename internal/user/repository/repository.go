package repository

import (
	"context"

	"accounts-service/internal/user/domain"
)

// Repository defines persistence for users.
type Repository interface {
	// GetByPhone returns the user for phone, or nil if not found.
	// It returns an error only for store failures, not for missing records.
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	// Create persists a new user keyed by its phone.
	Create(ctx context.Context, u *domain.User) error
	// Update replaces the existing user record keyed by its phone.
	Update(ctx context.Context, u *domain.User) error
	// Delete removes the user record for phone.
	Delete(ctx context.Context, phone string) error
}
