package middleware

import (
	"net/http"

	"labtrack/utils"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group to the given roles. Must run after
// AuthRequired.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.APIResponse{
				Success: false,
				Message: "Authentication required",
			})
			return
		}
		if _, ok := allowed[caller.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.APIResponse{
				Success: false,
				Message: "Forbidden: insufficient role",
			})
			return
		}
		c.Next()
	}
}
