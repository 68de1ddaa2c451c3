package service

import (
	"context"
	"fmt"

	"nio-menu/backend/internal/audit"
	auditdomain "nio-menu/backend/internal/audit/domain"
	"nio-menu/backend/internal/phone"
	linkdomain "nio-menu/backend/internal/phonelink/domain"
	personneldomain "nio-menu/backend/internal/personnel/domain"
	rolemenudomain "nio-menu/backend/internal/rolemenu/domain"
	rolemenurepo "nio-menu/backend/internal/rolemenu/repository"
)

// Outcome discriminates the three authorization decisions.
type Outcome string

const (
	// OutcomeNeedsLink means no usable phone number could be determined.
	OutcomeNeedsLink Outcome = "needs_link"
	// OutcomeUnauthorized means a phone was determined but no active personnel matches.
	OutcomeUnauthorized Outcome = "unauthorized"
	// OutcomeAuthorized carries the resolved personnel, role, permissions, and menu.
	OutcomeAuthorized Outcome = "authorized"
)

// Decision is the result of Authorize.
type Decision struct {
	Outcome     Outcome
	Phone       string
	Personnel   *personneldomain.Person
	Role        string
	Permissions []string
	Menu        []rolemenudomain.MenuItem
}

// LinkRepo is the minimal phone link lookup needed by the resolver.
type LinkRepo interface {
	GetByExternalID(ctx context.Context, externalID string) (*linkdomain.Link, error)
}

// PersonnelRepo is the minimal personnel lookup needed by the resolver.
type PersonnelRepo interface {
	GetActiveByPhone(ctx context.Context, phone string) (*personneldomain.Person, error)
}

// Resolver resolves an external identity or phone into an authorization decision:
// link → personnel → role → permissions → menu.
type Resolver struct {
	links      LinkRepo
	personnel  PersonnelRepo
	catalog    rolemenurepo.Repository
	auditor    audit.Recorder
	normalizer *phone.Normalizer
}

// NewResolver returns a Resolver with the given dependencies. auditor may be nil.
func NewResolver(
	links LinkRepo,
	personnel PersonnelRepo,
	catalog rolemenurepo.Repository,
	auditor audit.Recorder,
	normalizer *phone.Normalizer,
) *Resolver {
	return &Resolver{
		links:      links,
		personnel:  personnel,
		catalog:    catalog,
		auditor:    auditor,
		normalizer: normalizer,
	}
}

// Authorize determines the caller's decision. All steps are read-only except the
// best-effort AUTH_FAIL audit write. Store failures surface as errors; they are
// never downgraded to an Unauthorized decision.
func (r *Resolver) Authorize(ctx context.Context, externalID, rawPhone string) (*Decision, error) {
	tel := r.normalizer.Normalize(rawPhone)

	if tel == "" && externalID != "" {
		link, err := r.links.GetByExternalID(ctx, externalID)
		if err != nil {
			return nil, fmt.Errorf("authorize: link lookup: %w", err)
		}
		if link != nil && link.Verified {
			tel = r.normalizer.Normalize(link.Phone)
		}
	}
	if tel == "" {
		return &Decision{Outcome: OutcomeNeedsLink}, nil
	}

	person, err := r.personnel.GetActiveByPhone(ctx, tel)
	if err != nil {
		return nil, fmt.Errorf("authorize: personnel lookup: %w", err)
	}
	if person == nil {
		if r.auditor != nil {
			r.auditor.Record(ctx, externalID, tel, 0, auditdomain.KindAuthFail, "phone not authorized")
		}
		return &Decision{Outcome: OutcomeUnauthorized, Phone: tel}, nil
	}

	role := person.PrimaryRole
	if role == "" {
		role = rolemenudomain.RoleGeneral
	}

	perms, err := r.catalog.ListPermissionsByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("authorize: permission lookup: %w", err)
	}

	menu, err := r.catalog.ListMenuByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("authorize: menu lookup: %w", err)
	}
	if len(menu) == 0 {
		menu, err = r.catalog.ListGeneralMenu(ctx)
		if err != nil {
			return nil, fmt.Errorf("authorize: general menu lookup: %w", err)
		}
	}

	return &Decision{
		Outcome:     OutcomeAuthorized,
		Phone:       tel,
		Personnel:   person,
		Role:        role,
		Permissions: perms,
		Menu:        menu,
	}, nil
}
