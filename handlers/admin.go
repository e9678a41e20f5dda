package handlers

import (
	"net/http"

	"labtrack/middleware"
	"labtrack/models"
	user "labtrack/services/user"
	"labtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes account management for administrators.
type AdminHandler struct {
	Service user.UserService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc user.UserService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// ListUsers handles GET /admin/users?role=...
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.ListUsers(c.Query("role"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, "", users)
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload")
		return
	}

	created, err := h.Service.CreateUser(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, "User created successfully", created)
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := c.Param("id")
	if caller.ID == id {
		utils.JSONError(c, http.StatusBadRequest, "You cannot delete your own admin account.")
		return
	}

	if err := h.Service.DeleteUser(caller.ID, id); err != nil {
		utils.GetLogger().Warn("failed to delete user", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "User not found.")
		return
	}
	utils.JSONSuccess(c, "User deleted successfully.", nil)
}
