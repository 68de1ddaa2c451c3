// Package handler exposes audit event append over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nio-menu/backend/internal/audit"
)

// Handler serves POST /audit.
type Handler struct {
	recorder audit.Recorder
}

// NewHandler returns an audit handler backed by the given recorder.
func NewHandler(recorder audit.Recorder) *Handler {
	return &Handler{recorder: recorder}
}

type auditRequest struct {
	ExternalID  string `json:"external_id"`
	Phone       string `json:"phone"`
	PersonnelID int64  `json:"personnel_id"`
	EventKind   string `json:"event_kind"`
	Detail      string `json:"detail"`
}

// Append handles POST /audit. The write is fire-and-forget; the response is
// ok:true even if persistence fails.
func (h *Handler) Append(c *gin.Context) {
	var req auditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_request", "detail": "malformed JSON body"})
		return
	}
	if req.EventKind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_request", "detail": "event_kind is required"})
		return
	}

	h.recorder.Record(c.Request.Context(), req.ExternalID, req.Phone, req.PersonnelID, req.EventKind, req.Detail)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
