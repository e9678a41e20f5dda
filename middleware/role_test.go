package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"labtrack/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleRouter(caller *models.AuthUser, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if caller != nil {
			c.Set("authUser", *caller)
		}
		c.Next()
	})
	r.GET("/guarded", RequireRoles(roles...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireRolesAllowsListedRoles(t *testing.T) {
	for _, role := range []string{models.RoleTechnician, models.RoleAdmin} {
		r := roleRouter(&models.AuthUser{ID: "u-1", Role: role}, models.RoleTechnician, models.RoleAdmin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}
}

func TestRequireRolesRejectsOtherRoles(t *testing.T) {
	for _, role := range []string{models.RolePatient, models.RoleDoctor} {
		r := roleRouter(&models.AuthUser{ID: "u-1", Role: role}, models.RoleTechnician, models.RoleAdmin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
		assert.Equal(t, http.StatusForbidden, w.Code, "role %s", role)
	}
}

func TestRequireRolesWithoutCaller(t *testing.T) {
	r := roleRouter(nil, models.RoleAdmin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
