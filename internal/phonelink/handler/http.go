// Package handler exposes the phone-linking flow over HTTP.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nio-menu/backend/internal/phonelink/service"
)

// Handler serves POST /link/start and POST /link/verify.
type Handler struct {
	links *service.LinkService
}

// NewHandler returns a link handler backed by the given service.
func NewHandler(links *service.LinkService) *Handler {
	return &Handler{links: links}
}

type startRequest struct {
	ExternalID string `json:"external_id"`
	Phone      string `json:"phone"`
}

// Start handles POST /link/start.
func (h *Handler) Start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_request", "detail": "malformed JSON body"})
		return
	}

	res, err := h.links.Start(c.Request.Context(), req.ExternalID, req.Phone)
	if err != nil {
		respondLinkError(c, err)
		return
	}

	body := gin.H{"ok": true, "sent": res.Sent}
	if res.Code != "" {
		// Dev OTP mode only; production config rejects this path.
		body["code"] = res.Code
	}
	c.JSON(http.StatusOK, body)
}

type verifyRequest struct {
	ExternalID string `json:"external_id"`
	Code       string `json:"code"`
}

// Verify handles POST /link/verify.
func (h *Handler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_request", "detail": "malformed JSON body"})
		return
	}

	res, err := h.links.Verify(c.Request.Context(), req.ExternalID, req.Code)
	if err != nil {
		respondLinkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "verified": true, "phone": res.Phone})
}

// respondLinkError maps link service sentinel errors to HTTP statuses.
func respondLinkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_request", "detail": err.Error()})
	case errors.Is(err, service.ErrPhoneNotFound), errors.Is(err, service.ErrNoChallenge):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not_found", "detail": err.Error()})
	case errors.Is(err, service.ErrTooManyAttempts):
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too_many_attempts", "detail": err.Error()})
	case errors.Is(err, service.ErrCodeExpired):
		c.JSON(http.StatusGone, gin.H{"ok": false, "error": "code_expired", "detail": err.Error()})
	case errors.Is(err, service.ErrInvalidCode):
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid_code", "detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal"})
	}
}
