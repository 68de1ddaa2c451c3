package repository

import (
	"context"

	"nio-menu/backend/internal/format/domain"
)

// Repository defines read access to the format catalog.
type Repository interface {
	// ListCategories returns active format counts per category.
	ListCategories(ctx context.Context) ([]domain.CategoryCount, error)
	// GetByID returns the active format for id, or nil if not found.
	GetByID(ctx context.Context, id int64) (*domain.Format, error)
}
