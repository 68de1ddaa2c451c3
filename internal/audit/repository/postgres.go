package repository

import (
	"context"
	"database/sql"

	"nio-menu/backend/internal/audit/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an audit event repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create persists the audit event. The event must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, e *domain.Event) error {
	const q = `
		INSERT INTO audit_events (id, external_id, phone, personnel_id, event_kind, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	ext := sql.NullString{String: e.ExternalID, Valid: e.ExternalID != ""}
	phone := sql.NullString{String: e.Phone, Valid: e.Phone != ""}
	pid := sql.NullInt64{Int64: e.PersonnelID, Valid: e.PersonnelID != 0}
	detail := sql.NullString{String: e.Detail, Valid: e.Detail != ""}
	_, err := r.db.ExecContext(ctx, q, e.ID, ext, phone, pid, e.Kind, detail, e.CreatedAt)
	return err
}
