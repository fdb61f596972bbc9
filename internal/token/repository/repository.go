package repository

import (
	"context"

	"accounts-service/internal/token/domain"
)

// Repository defines persistence for tokens.
type Repository interface {
	// GetByID returns the token for id, or nil if not found.
	// It returns an error only for store failures, not for missing records.
	GetByID(ctx context.Context, id string) (*domain.Token, error)
	// Create persists a new token keyed by its id.
	Create(ctx context.Context, t *domain.Token) error
	// Update replaces the existing token record keyed by its id.
	Update(ctx context.Context, t *domain.Token) error
	// Delete removes the token record for id.
	Delete(ctx context.Context, id string) error
}
