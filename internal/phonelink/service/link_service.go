package service

import (
	"context"
	"errors"
	"time"

	"nio-menu/backend/internal/otp"
	"nio-menu/backend/internal/phone"
	"nio-menu/backend/internal/phonelink/domain"
	linkrepo "nio-menu/backend/internal/phonelink/repository"
	personneldomain "nio-menu/backend/internal/personnel/domain"
)

// Sentinel errors for the link service; the handler maps them to HTTP statuses.
var (
	ErrValidation      = errors.New("external id and a valid phone number are required")
	ErrPhoneNotFound   = errors.New("no active personnel record for that phone")
	ErrNoChallenge     = errors.New("no pending link challenge")
	ErrTooManyAttempts = errors.New("too many attempts; start the link flow again")
	ErrCodeExpired     = errors.New("code expired; start the link flow again")
	ErrInvalidCode     = errors.New("invalid code")
)

// MaxVerifyAttempts is the cumulative failed-attempt limit per challenge.
// The limit is permanent for the challenge; only a new Start resets it.
const MaxVerifyAttempts = 5

// minCodeLength rejects obviously malformed codes before any lookup.
const minCodeLength = 4

// PersonnelRepo is the minimal personnel lookup needed by the link service.
type PersonnelRepo interface {
	GetActiveByPhone(ctx context.Context, phone string) (*personneldomain.Person, error)
}

// CodeSender delivers the plaintext code out of band (e.g. SMS).
type CodeSender interface {
	SendCode(ctx context.Context, phone, code string) error
}

// StartResult holds the outcome of Start. Code is populated only in dev OTP mode.
type StartResult struct {
	Sent bool
	Code string
}

// VerifyResult holds the outcome of a successful Verify.
type VerifyResult struct {
	Phone string
}

// LinkService implements the OTP phone-linking protocol: Start issues a challenge,
// Verify proves phone ownership and marks the link verified.
type LinkService struct {
	links      linkrepo.Repository
	personnel  PersonnelRepo
	sender     CodeSender
	normalizer *phone.Normalizer
	// returnCode enables dev OTP mode: the plaintext code is returned to the caller
	// instead of being delivered out of band. Rejected in production by config.Load.
	returnCode bool
	now        func() time.Time
}

// NewLinkService returns a LinkService with the given dependencies.
// sender may be nil only when returnCode is true.
func NewLinkService(
	links linkrepo.Repository,
	personnel PersonnelRepo,
	sender CodeSender,
	normalizer *phone.Normalizer,
	returnCode bool,
) *LinkService {
	return &LinkService{
		links:      links,
		personnel:  personnel,
		sender:     sender,
		normalizer: normalizer,
		returnCode: returnCode,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Start issues a new OTP challenge for externalID and rawPhone. Any prior link
// state for the identity, verified or not, is overwritten and the attempt counter
// reset. Returns ErrValidation for malformed input and ErrPhoneNotFound when no
// active personnel record matches the normalized phone.
func (s *LinkService) Start(ctx context.Context, externalID, rawPhone string) (*StartResult, error) {
	if externalID == "" {
		return nil, ErrValidation
	}
	tel := s.normalizer.Normalize(rawPhone)
	if tel == "" {
		return nil, ErrValidation
	}

	person, err := s.personnel.GetActiveByPhone(ctx, tel)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPhoneNotFound
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return nil, err
	}
	expiresAt := s.now().Add(linkrepo.DefaultChallengeTTL)
	link := &domain.Link{
		ExternalID:   externalID,
		Phone:        tel,
		Verified:     false,
		OTPHash:      otp.HashCode(externalID, tel, code),
		OTPExpiresAt: &expiresAt,
		OTPAttempts:  0,
	}
	if err := s.links.Upsert(ctx, link); err != nil {
		return nil, err
	}

	if s.returnCode {
		return &StartResult{Sent: true, Code: code}, nil
	}
	if s.sender == nil {
		return nil, errors.New("link: no code sender configured")
	}
	if err := s.sender.SendCode(ctx, tel, code); err != nil {
		return nil, err
	}
	return &StartResult{Sent: true}, nil
}

// Verify checks the supplied code against the pending challenge for externalID.
// Order of checks: attempt limit, expiry, hash. A mismatch increments the attempt
// counter; a match marks the link verified and clears the challenge, so replaying
// the same code fails with ErrNoChallenge.
func (s *LinkService) Verify(ctx context.Context, externalID, code string) (*VerifyResult, error) {
	if len(code) < minCodeLength {
		return nil, ErrValidation
	}

	link, err := s.links.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if link == nil || !link.HasChallenge() {
		return nil, ErrNoChallenge
	}
	if link.OTPAttempts >= MaxVerifyAttempts {
		return nil, ErrTooManyAttempts
	}
	if s.now().After(*link.OTPExpiresAt) {
		return nil, ErrCodeExpired
	}
	if !otp.CodeEqual(externalID, link.Phone, code, link.OTPHash) {
		if err := s.links.IncrementAttempts(ctx, externalID); err != nil {
			return nil, err
		}
		return nil, ErrInvalidCode
	}
	if err := s.links.MarkVerified(ctx, externalID); err != nil {
		return nil, err
	}
	return &VerifyResult{Phone: link.Phone}, nil
}
