// Package handler exposes the health endpoint.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves GET /health for readiness/liveness.
type Handler struct {
	service string
}

// NewHandler returns a health handler reporting the given service name.
func NewHandler(service string) *Handler {
	return &Handler{service: service}
}

// Check handles GET /health.
func (h *Handler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": h.service})
}
