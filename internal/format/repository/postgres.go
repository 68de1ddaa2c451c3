package repository

import (
	"context"
	"database/sql"
	"errors"

	"nio-menu/backend/internal/format/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a format catalog repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListCategories returns active format counts per category.
func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.CategoryCount, error) {
	const q = `
		SELECT category, COUNT(*)
		FROM formats
		WHERE active
		GROUP BY category
		ORDER BY category ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CategoryCount{}
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Total); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID returns the active format for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Format, error) {
	const q = `
		SELECT id, category, name, description, url
		FROM formats
		WHERE id = $1 AND active`
	var f domain.Format
	err := r.db.QueryRowContext(ctx, q, id).Scan(&f.ID, &f.Category, &f.Name, &f.Description, &f.URL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}
