package handlers

import (
	"net/http"
	"strings"

	"labtrack/middleware"
	"labtrack/models"
	user "labtrack/services/user"
	"labtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// Register handles POST /auth/register (patient self-service).
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload")
		return
	}

	resp, err := h.Service.RegisterPatient(input)
	if err != nil {
		utils.GetLogger().Warn("registration rejected", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONSuccess(c, "Registration successful", resp)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	resp, err := h.Service.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	utils.JSONSuccess(c, "Login successful", resp)
}

// Me handles GET /auth/me for any authenticated caller.
func (h *AuthHandler) Me(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	usr, err := h.Service.GetUserByID(caller.ID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found")
		return
	}
	utils.JSONSuccess(c, "", usr)
}

// Logout handles POST /auth/logout: revokes the presented bearer token.
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
		return
	}

	if err := h.Service.RevokeToken(token); err != nil {
		utils.GetLogger().Error("failed to revoke token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to log out")
		return
	}
	utils.JSONSuccess(c, "Logged out", nil)
}
