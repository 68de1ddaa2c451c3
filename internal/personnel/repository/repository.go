package repository

import (
	"context"

	"nio-menu/backend/internal/personnel/domain"
)

// Repository defines read access to the personnel roster.
type Repository interface {
	// GetActiveByPhone returns the active person with the given normalized phone,
	// or nil if no active record matches.
	GetActiveByPhone(ctx context.Context, phone string) (*domain.Person, error)
}
