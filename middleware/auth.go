package middleware

import (
	"net/http"
	"strings"

	"labtrack/models"
	"labtrack/utils"

	"github.com/gin-gonic/gin"
)

const authUserKey = "authUser"

// AuthRequired validates the bearer token, checks it is still live in the
// auth cache, and stores the resolved identity on the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Missing or invalid Authorization header",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Invalid or expired token",
			})
			return
		}

		live, err := utils.AuthTokenLive(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
		if err != nil || !live {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Token has been revoked",
			})
			return
		}

		c.Set(authUserKey, models.AuthUser{ID: userID, Role: role})
		c.Next()
	}
}

// CallerFrom returns the authenticated caller set by AuthRequired.
func CallerFrom(c *gin.Context) (models.AuthUser, bool) {
	v, ok := c.Get(authUserKey)
	if !ok {
		return models.AuthUser{}, false
	}
	caller, ok := v.(models.AuthUser)
	return caller, ok
}
