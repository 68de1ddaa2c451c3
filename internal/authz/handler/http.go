// Package handler exposes the authorization resolver over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nio-menu/backend/internal/authz/service"
	rolemenudomain "nio-menu/backend/internal/rolemenu/domain"
)

// Handler serves POST /auth.
type Handler struct {
	resolver *service.Resolver
}

// NewHandler returns an auth handler backed by the given resolver.
func NewHandler(resolver *service.Resolver) *Handler {
	return &Handler{resolver: resolver}
}

type authRequest struct {
	ExternalID string `json:"external_id"`
	Phone      string `json:"phone"`
}

// Authorize handles POST /auth. Business-level rejection is not a transport error:
// all three decisions are returned under an ok:true envelope.
func (h *Handler) Authorize(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_request", "detail": "malformed JSON body"})
		return
	}

	d, err := h.resolver.Authorize(c.Request.Context(), req.ExternalID, req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal"})
		return
	}

	switch d.Outcome {
	case service.OutcomeNeedsLink:
		c.JSON(http.StatusOK, gin.H{"ok": true, "needs_link": true})
	case service.OutcomeUnauthorized:
		c.JSON(http.StatusOK, gin.H{"ok": true, "authorized": false})
	default:
		menu := d.Menu
		if menu == nil {
			menu = []rolemenudomain.MenuItem{}
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":          true,
			"authorized":  true,
			"phone":       d.Phone,
			"personnel":   d.Personnel,
			"role":        d.Role,
			"permissions": d.Permissions,
			"menu":        menu,
		})
	}
}
