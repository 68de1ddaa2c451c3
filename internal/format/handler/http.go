// Package handler exposes the format catalog over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nio-menu/backend/internal/format/repository"
)

// Handler serves GET /formats/categories and GET /formats/:id.
type Handler struct {
	formats repository.Repository
}

// NewHandler returns a format handler backed by the given repository.
func NewHandler(formats repository.Repository) *Handler {
	return &Handler{formats: formats}
}

// Categories handles GET /formats/categories.
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.formats.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "categories": categories})
}

// GetByID handles GET /formats/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid_request", "detail": "id must be numeric"})
		return
	}
	f, err := h.formats.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal"})
		return
	}
	if f == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "format": f})
}
