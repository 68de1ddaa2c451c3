package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"nio-menu/backend/internal/authz/service"
	personneldomain "nio-menu/backend/internal/personnel/domain"
	"nio-menu/backend/internal/phone"
	linkdomain "nio-menu/backend/internal/phonelink/domain"
	rolemenudomain "nio-menu/backend/internal/rolemenu/domain"
)

type memLinkRepo struct {
	m map[string]*linkdomain.Link
}

func (r *memLinkRepo) GetByExternalID(ctx context.Context, externalID string) (*linkdomain.Link, error) {
	return r.m[externalID], nil
}

type memPersonnelRepo struct {
	byPhone map[string]*personneldomain.Person
}

func (r *memPersonnelRepo) GetActiveByPhone(ctx context.Context, phone string) (*personneldomain.Person, error) {
	return r.byPhone[phone], nil
}

type memCatalog struct {
	menuByRole  map[string][]rolemenudomain.MenuItem
	generalMenu []rolemenudomain.MenuItem
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
	return []string{}, nil
}

func newTestRouter(catalog *memCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	links := &memLinkRepo{m: map[string]*linkdomain.Link{
		"linked": {ExternalID: "linked", Phone: "5512345678", Verified: true},
	}}
	personnel := &memPersonnelRepo{byPhone: map[string]*personneldomain.Person{
		"5512345678": {ID: 1, Phone: "5512345678", FullName: "Ana Torres", PrimaryRole: "SUPERVISOR", Active: true},
	}}
	resolver := service.NewResolver(links, personnel, catalog, nil, phone.NewNormalizer("52"))
	h := NewHandler(resolver)

	r := gin.New()
	r.POST("/auth", h.Authorize)
	return r
}

func defaultCatalog() *memCatalog {
	return &memCatalog{
		menuByRole: map[string][]rolemenudomain.MenuItem{
			"SUPERVISOR": {{ID: 10, Code: "rosters", Title: "Rosters", Kind: "report"}},
		},
		generalMenu: []rolemenudomain.MenuItem{{ID: 90, Code: "help", Title: "Help", Kind: "info"}},
	}
}

func doAuth(t *testing.T, r *gin.Engine, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestAuthorize_AuthorizedShape(t *testing.T) {
	r := newTestRouter(defaultCatalog())
	w, resp := doAuth(t, r, gin.H{"phone": "5215512345678"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp["ok"] != true || resp["authorized"] != true {
		t.Fatalf("response = %v", resp)
	}
	if resp["phone"] != "5512345678" || resp["role"] != "SUPERVISOR" {
		t.Errorf("response = %v", resp)
	}
	menu, ok := resp["menu"].([]any)
	if !ok || len(menu) != 1 {
		t.Errorf("menu = %v, want 1 item", resp["menu"])
	}
}

func TestAuthorize_NeedsLink(t *testing.T) {
	r := newTestRouter(defaultCatalog())
	w, resp := doAuth(t, r, gin.H{"external_id": "never-linked"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp["ok"] != true || resp["needs_link"] != true {
		t.Errorf("response = %v", resp)
	}
	if _, present := resp["authorized"]; present {
		t.Errorf("needs_link response should not carry authorized: %v", resp)
	}
}

func TestAuthorize_UnauthorizedIsOK200(t *testing.T) {
	r := newTestRouter(defaultCatalog())
	w, resp := doAuth(t, r, gin.H{"phone": "5500000000"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (business rejection is not a transport error)", w.Code)
	}
	if resp["ok"] != true || resp["authorized"] != false {
		t.Errorf("response = %v", resp)
	}
}

func TestAuthorize_LinkedIdentity(t *testing.T) {
	r := newTestRouter(defaultCatalog())
	w, resp := doAuth(t, r, gin.H{"external_id": "linked"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp["authorized"] != true {
		t.Errorf("response = %v", resp)
	}
}

func TestAuthorize_StoreFailureIs500(t *testing.T) {
	catalog := defaultCatalog()
	catalog.err = errors.New("db down")
	r := newTestRouter(catalog)
	w, resp := doAuth(t, r, gin.H{"phone": "5512345678"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 (never downgraded to unauthorized)", w.Code)
	}
	if resp["ok"] != false {
		t.Errorf("response = %v", resp)
	}
}
