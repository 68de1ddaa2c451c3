package repository

import (
	"context"
	"time"

	"nio-menu/backend/internal/phonelink/domain"
)

// Repository defines persistence for phone links.
type Repository interface {
	// GetByExternalID returns the link for the external id, or nil if not found.
	GetByExternalID(ctx context.Context, externalID string) (*domain.Link, error)
	// Upsert inserts or replaces the link for link.ExternalID. Replacement overwrites
	// phone and challenge state and resets verified and the attempt counter; it is
	// not a merge.
	Upsert(ctx context.Context, link *domain.Link) error
	// MarkVerified sets verified, clears the challenge, and resets the attempt counter.
	MarkVerified(ctx context.Context, externalID string) error
	// IncrementAttempts adds one to the attempt counter of the pending challenge.
	// Plain read-modify-write at the store; concurrent verifies can both observe the
	// pre-increment value, so the attempt limit is a best-effort throttle.
	IncrementAttempts(ctx context.Context, externalID string) error
}

// DefaultChallengeTTL is the OTP challenge expiry window.
const DefaultChallengeTTL = 10 * time.Minute
