package repository

import (
	"context"
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a service assignment repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListClients returns the distinct active client names assigned to personnelID.
func (r *PostgresRepository) ListClients(ctx context.Context, personnelID int64) ([]string, error) {
	const q = `
		SELECT DISTINCT client
		FROM service_assignments
		WHERE personnel_id = $1 AND active
		ORDER BY client ASC`
	return r.listStrings(ctx, q, personnelID)
}

// ListServices returns the active service names assigned to personnelID for client.
func (r *PostgresRepository) ListServices(ctx context.Context, personnelID int64, client string) ([]string, error) {
	const q = `
		SELECT service
		FROM service_assignments
		WHERE personnel_id = $1 AND client = $2 AND active
		ORDER BY service ASC`
	return r.listStrings(ctx, q, personnelID, client)
}

func (r *PostgresRepository) listStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
