package repository

import (
	"context"
	"database/sql"

	"nio-menu/backend/internal/rolemenu/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a role catalog repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListMenuByRole returns the active menu items mapped to roleCode, ordered by
// sort order with item id as the stable secondary sort.
func (r *PostgresRepository) ListMenuByRole(ctx context.Context, roleCode string) ([]domain.MenuItem, error) {
	const q = `
		SELECT mi.id, mi.code, mi.title, mi.kind, COALESCE(mi.payload, ''), mi.sort_order
		FROM role_menu rm
		JOIN menu_items mi ON mi.id = rm.menu_item_id
		WHERE rm.role_code = $1 AND mi.active
		ORDER BY mi.sort_order ASC, mi.id ASC`
	return r.listMenu(ctx, q, roleCode)
}

// ListGeneralMenu returns the active items in the general category, same ordering.
func (r *PostgresRepository) ListGeneralMenu(ctx context.Context) ([]domain.MenuItem, error) {
	const q = `
		SELECT mi.id, mi.code, mi.title, mi.kind, COALESCE(mi.payload, ''), mi.sort_order
		FROM menu_items mi
		WHERE mi.category = $1 AND mi.active
		ORDER BY mi.sort_order ASC, mi.id ASC`
	return r.listMenu(ctx, q, domain.CategoryGeneral)
}

func (r *PostgresRepository) listMenu(ctx context.Context, query string, arg any) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var (
			item    domain.MenuItem
			payload string
		)
		if err := rows.Scan(&item.ID, &item.Code, &item.Title, &item.Kind, &payload, &item.SortOrder); err != nil {
			return nil, err
		}
		item.Payload = domain.ParsePayload(payload)
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListPermissionsByRole returns the permission codes granted to roleCode.
func (r *PostgresRepository) ListPermissionsByRole(ctx context.Context, roleCode string) ([]string, error) {
	const q = `
		SELECT permission_code
		FROM role_permissions
		WHERE role_code = $1
		ORDER BY permission_code ASC`
	rows, err := r.db.QueryContext(ctx, q, roleCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		perms = append(perms, code)
	}
	return perms, rows.Err()
}
