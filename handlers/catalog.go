package handlers

import (
	"errors"
	"net/http"

	catalog "labtrack/services/catalog"
	"labtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the lab test catalog.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListActive handles GET /tests (public, active entries only).
func (h *CatalogHandler) ListActive(c *gin.Context) {
	tests, err := h.Service.ListActive()
	if err != nil {
		utils.GetLogger().Error("failed to load tests", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load tests")
		return
	}
	utils.JSONSuccess(c, "", tests)
}

// ListAll handles GET /tests/all (admin, active and inactive).
func (h *CatalogHandler) ListAll(c *gin.Context) {
	tests, err := h.Service.ListAll()
	if err != nil {
		utils.GetLogger().Error("failed to load tests", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load tests")
		return
	}
	utils.JSONSuccess(c, "", tests)
}

// AddTest handles POST /tests (admin).
func (h *CatalogHandler) AddTest(c *gin.Context) {
	var input catalog.TestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid test payload")
		return
	}

	created, err := h.Service.AddTest(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, "Test added successfully", created)
}

// UpdateTest handles PUT /tests/:id (admin).
func (h *CatalogHandler) UpdateTest(c *gin.Context) {
	var input catalog.TestUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid test payload")
		return
	}

	updated, err := h.Service.UpdateTest(c.Param("id"), input)
	if err != nil {
		h.respondError(c, err, "Failed to update test")
		return
	}
	utils.JSONSuccess(c, "Test updated successfully", updated)
}

// RemoveTest handles DELETE /tests/:id (admin, hard delete).
func (h *CatalogHandler) RemoveTest(c *gin.Context) {
	if err := h.Service.RemoveTest(c.Param("id")); err != nil {
		h.respondError(c, err, "Failed to remove test")
		return
	}
	utils.JSONSuccess(c, "Test removed successfully", nil)
}

// ToggleTest handles PATCH /tests/:id/toggle (admin).
func (h *CatalogHandler) ToggleTest(c *gin.Context) {
	updated, err := h.Service.ToggleTest(c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to update test")
		return
	}
	message := "Test disabled successfully"
	if updated.IsActive {
		message = "Test enabled successfully"
	}
	utils.JSONSuccess(c, message, updated)
}

func (h *CatalogHandler) respondError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, catalog.ErrTestNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Test not found")
		return
	}
	utils.GetLogger().Error(fallback, zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, fallback)
}
