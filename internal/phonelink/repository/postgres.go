package repository

import (
	"context"
	"database/sql"
	"errors"

	"nio-menu/backend/internal/phonelink/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a phone link repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByExternalID returns the link for the external id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.Link, error) {
	const q = `
		SELECT external_id, phone, verified, otp_hash, otp_expires_at, otp_attempts, created_at, updated_at
		FROM phone_links
		WHERE external_id = $1`
	var (
		l    domain.Link
		hash sql.NullString
		exp  sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, q, externalID).Scan(
		&l.ExternalID, &l.Phone, &l.Verified, &hash, &exp, &l.OTPAttempts, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if hash.Valid {
		l.OTPHash = hash.String
	}
	if exp.Valid {
		t := exp.Time
		l.OTPExpiresAt = &t
	}
	return &l, nil
}

// Upsert inserts or replaces the link row for link.ExternalID (insert-or-replace, not a merge).
func (r *PostgresRepository) Upsert(ctx context.Context, link *domain.Link) error {
	const q = `
		INSERT INTO phone_links (external_id, phone, verified, otp_hash, otp_expires_at, otp_attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (external_id) DO UPDATE SET
			phone          = EXCLUDED.phone,
			verified       = EXCLUDED.verified,
			otp_hash       = EXCLUDED.otp_hash,
			otp_expires_at = EXCLUDED.otp_expires_at,
			otp_attempts   = EXCLUDED.otp_attempts,
			updated_at     = now()`
	hash := sql.NullString{String: link.OTPHash, Valid: link.OTPHash != ""}
	var exp sql.NullTime
	if link.OTPExpiresAt != nil {
		exp = sql.NullTime{Time: *link.OTPExpiresAt, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, q, link.ExternalID, link.Phone, link.Verified, hash, exp, link.OTPAttempts)
	return err
}

// MarkVerified sets verified, clears the challenge, and resets the attempt counter.
func (r *PostgresRepository) MarkVerified(ctx context.Context, externalID string) error {
	const q = `
		UPDATE phone_links
		SET verified = TRUE, otp_hash = NULL, otp_expires_at = NULL, otp_attempts = 0, updated_at = now()
		WHERE external_id = $1`
	_, err := r.db.ExecContext(ctx, q, externalID)
	return err
}

// IncrementAttempts adds one to the attempt counter for the external id.
func (r *PostgresRepository) IncrementAttempts(ctx context.Context, externalID string) error {
	const q = `
		UPDATE phone_links
		SET otp_attempts = otp_attempts + 1, updated_at = now()
		WHERE external_id = $1`
	_, err := r.db.ExecContext(ctx, q, externalID)
	return err
}
