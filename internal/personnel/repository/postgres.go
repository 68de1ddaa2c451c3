package repository

import (
	"context"
	"database/sql"
	"errors"

	"nio-menu/backend/internal/personnel/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a personnel repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetActiveByPhone returns the active person for phone, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetActiveByPhone(ctx context.Context, phone string) (*domain.Person, error) {
	const q = `
		SELECT id, phone, full_name, primary_role, active, created_at
		FROM personnel
		WHERE phone = $1 AND active`
	var p domain.Person
	err := r.db.QueryRowContext(ctx, q, phone).Scan(
		&p.ID, &p.Phone, &p.FullName, &p.PrimaryRole, &p.Active, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
