package domain

import "time"

// Link maps an external messaging identity to a phone number with its verification
// state and, while linking is in progress, the pending OTP challenge.
// Verified true implies the challenge fields are cleared.
type Link struct {
	ExternalID string
	Phone      string
	Verified   bool
	// OTPHash is the identity-bound hash of the pending code; empty when no challenge.
	OTPHash string
	// OTPExpiresAt is the absolute challenge expiry; nil when no challenge.
	OTPExpiresAt *time.Time
	// OTPAttempts counts failed verify attempts against the pending challenge.
	OTPAttempts int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasChallenge reports whether a pending OTP challenge is stored.
func (l *Link) HasChallenge() bool {
	return l.OTPHash != "" && l.OTPExpiresAt != nil
}
