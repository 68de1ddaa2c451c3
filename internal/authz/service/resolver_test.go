package service

import (
	"context"
	"errors"
	"testing"

	"nio-menu/backend/internal/phone"
	linkdomain "nio-menu/backend/internal/phonelink/domain"
	personneldomain "nio-menu/backend/internal/personnel/domain"
	rolemenudomain "nio-menu/backend/internal/rolemenu/domain"
)

type memLinkRepo struct {
	m   map[string]*linkdomain.Link
	err error
}

func (r *memLinkRepo) GetByExternalID(ctx context.Context, externalID string) (*linkdomain.Link, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.m[externalID], nil
}

type memPersonnelRepo struct {
	byPhone map[string]*personneldomain.Person
	err     error
}

func (r *memPersonnelRepo) GetActiveByPhone(ctx context.Context, phone string) (*personneldomain.Person, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.byPhone[phone]
	if !ok || !p.Active {
		return nil, nil
	}
	return p, nil
}

type memCatalog struct {
	menuByRole  map[string][]rolemenudomain.MenuItem
	generalMenu []rolemenudomain.MenuItem
	permsByRole map[string][]string
	err         error
}

func (c *memCatalog) ListMenuByRole(ctx context.Context, roleCode string) ([]rolemenudomain.MenuItem, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.menuByRole[roleCode], nil
}

func (c *memCatalog) ListGeneralMenu(ctx context.Context) ([]rolemenudomain.MenuItem, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.generalMenu, nil
}

func (c *memCatalog) ListPermissionsByRole(ctx context.Context, roleCode string) ([]string, error) {
	if c.err != nil {
		return nil, c.err
	}
	perms, ok := c.permsByRole[roleCode]
	if !ok {
		return []string{}, nil
	}
	return perms, nil
}

type memRecorder struct {
	kinds []string
}

func (a *memRecorder) Record(ctx context.Context, externalID, phone string, personnelID int64, kind, detail string) {
	a.kinds = append(a.kinds, kind)
}

func newTestResolver() (*Resolver, *memLinkRepo, *memPersonnelRepo, *memCatalog, *memRecorder) {
	links := &memLinkRepo{m: make(map[string]*linkdomain.Link)}
	personnel := &memPersonnelRepo{byPhone: map[string]*personneldomain.Person{
		"5512345678": {ID: 1, Phone: "5512345678", FullName: "Ana Torres", PrimaryRole: "SUPERVISOR", Active: true},
		"5599887766": {ID: 2, Phone: "5599887766", FullName: "Luis Vega", PrimaryRole: "", Active: true},
	}}
	catalog := &memCatalog{
		menuByRole: map[string][]rolemenudomain.MenuItem{
			"SUPERVISOR": {
				{ID: 10, Code: "rosters", Title: "Rosters", Kind: "report", SortOrder: 1},
				{ID: 11, Code: "formats", Title: "Formats", Kind: "catalog", SortOrder: 2},
			},
		},
		generalMenu: []rolemenudomain.MenuItem{
			{ID: 90, Code: "help", Title: "Help", Kind: "info", SortOrder: 1},
		},
		permsByRole: map[string][]string{
			"SUPERVISOR": {"reports.read", "rosters.read"},
		},
	}
	auditor := &memRecorder{}
	r := NewResolver(links, personnel, catalog, auditor, phone.NewNormalizer("52"))
	return r, links, personnel, catalog, auditor
}

func TestAuthorize_DirectPhone(t *testing.T) {
	r, _, _, _, _ := newTestResolver()
	d, err := r.Authorize(context.Background(), "", "5215512345678")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if d.Outcome != OutcomeAuthorized {
		t.Fatalf("Outcome = %q, want authorized", d.Outcome)
	}
	if d.Phone != "5512345678" {
		t.Errorf("Phone = %q, want 5512345678", d.Phone)
	}
	if d.Role != "SUPERVISOR" {
		t.Errorf("Role = %q, want SUPERVISOR", d.Role)
	}
	if len(d.Permissions) != 2 {
		t.Errorf("Permissions = %v, want 2 codes", d.Permissions)
	}
	if len(d.Menu) != 2 || d.Menu[0].Code != "rosters" {
		t.Errorf("Menu = %v, want role menu in order", d.Menu)
	}
}

func TestAuthorize_VerifiedLinkSuppliesPhone(t *testing.T) {
	r, links, _, _, _ := newTestResolver()
	links.m["u1"] = &linkdomain.Link{ExternalID: "u1", Phone: "5512345678", Verified: true}

	d, err := r.Authorize(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if d.Outcome != OutcomeAuthorized {
		t.Errorf("Outcome = %q, want authorized", d.Outcome)
	}
}

func TestAuthorize_UnverifiedLinkNeedsLink(t *testing.T) {
	r, links, _, _, _ := newTestResolver()
	links.m["u1"] = &linkdomain.Link{ExternalID: "u1", Phone: "5512345678", Verified: false}

	d, err := r.Authorize(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if d.Outcome != OutcomeNeedsLink {
		t.Errorf("Outcome = %q, want needs_link", d.Outcome)
	}
}

func TestAuthorize_NoIdentityNeedsLink(t *testing.T) {
	r, _, _, _, _ := newTestResolver()
	d, err := r.Authorize(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if d.Outcome != OutcomeNeedsLink {
		t.Errorf("Outcome = %q, want needs_link", d.Outcome)
	}
}

func TestAuthorize_UnknownPhoneUnauthorizedAndAudited(t *testing.T) {
	r, _, _, _, auditor := newTestResolver()
	d, err := r.Authorize(context.Background(), "u1", "5500000000")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if d.Outcome != OutcomeUnauthorized {
		t.Errorf("Outcome = %q, want unauthorized", d.Outcome)
	}
	if len(auditor.kinds) != 1 || auditor.kinds[0] != "AUTH_FAIL" {
		t.Errorf("audit kinds = %v, want [AUTH_FAIL]", auditor.kinds)
	}
}

func TestAuthorize_EmptyRoleFallsBackToGeneral(t *testing.T) {
	r, _, _, _, _ := newTestResolver()
	d, err := r.Authorize(context.Background(), "", "5599887766")
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if d.Role != rolemenudomain.RoleGeneral {
		t.Errorf("Role = %q, want %q", d.Role, rolemenudomain.RoleGeneral)
	}
	if len(d.Permissions) != 0 {
		t.Errorf("Permissions = %v, want empty", d.Permissions)
	}
	// GENERAL has no explicit mappings, so the general-category menu is served.
	if len(d.Menu) != 1 || d.Menu[0].Code != "help" {
		t.Errorf("Menu = %v, want general fallback menu", d.Menu)
	}
}

func TestAuthorize_StoreFailureIsNotUnauthorized(t *testing.T) {
	r, _, _, catalog, _ := newTestResolver()
	catalog.err = errors.New("db down")
	_, err := r.Authorize(context.Background(), "", "5512345678")
	if err == nil {
		t.Fatal("catalog failure must surface as an error")
	}
}

func TestAuthorize_PersonnelFailurePropagates(t *testing.T) {
	r, _, personnel, _, _ := newTestResolver()
	personnel.err = errors.New("db down")
	_, err := r.Authorize(context.Background(), "", "5512345678")
	if err == nil {
		t.Fatal("personnel lookup failure must surface as an error")
	}
}
