package repository

import (
	"context"

	"nio-menu/backend/internal/rolemenu/domain"
)

// Repository defines read access to the role catalog: menu mappings and permission grants.
type Repository interface {
	// ListMenuByRole returns the active menu items mapped to the role, ordered by
	// sort order then item id.
	ListMenuByRole(ctx context.Context, roleCode string) ([]domain.MenuItem, error)
	// ListGeneralMenu returns the active items in the general category, same ordering.
	ListGeneralMenu(ctx context.Context) ([]domain.MenuItem, error)
	// ListPermissionsByRole returns the permission codes granted to the role.
	// A role with no grants yields an empty slice, not an error.
	ListPermissionsByRole(ctx context.Context, roleCode string) ([]string, error)
}
