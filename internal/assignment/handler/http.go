// Package handler exposes service assignment queries over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nio-menu/backend/internal/assignment/repository"
)

// Handler serves GET /assignments/clients and GET /assignments/services.
type Handler struct {
	assignments repository.Repository
}

// NewHandler returns an assignment handler backed by the given repository.
func NewHandler(assignments repository.Repository) *Handler {
	return &Handler{assignments: assignments}
}

// Clients handles GET /assignments/clients?personnel_id=.
func (h *Handler) Clients(c *gin.Context) {
	pid, ok := personnelID(c)
	if !ok {
		return
	}
	clients, err := h.assignments.ListClients(c.Request.Context(), pid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "clients": clients})
}

// Services handles GET /assignments/services?personnel_id=&client=.
func (h *Handler) Services(c *gin.Context) {
	pid, ok := personnelID(c)
	if !ok {
		return
	}
	client := c.Query("client")
	if client == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_request", "detail": "client is required"})
		return
	}
	services, err := h.assignments.ListServices(c.Request.Context(), pid, client)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "services": services})
}

func personnelID(c *gin.Context) (int64, bool) {
	pid, err := strconv.ParseInt(c.Query("personnel_id"), 10, 64)
	if err != nil || pid <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_request", "detail": "personnel_id must be a positive integer"})
		return 0, false
	}
	return pid, true
}
