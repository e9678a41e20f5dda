package routes

import (
	"net/http"
	"time"

	"labtrack/handlers"
	"labtrack/middleware"
	"labtrack/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Auth    *handlers.AuthHandler
	Catalog *handlers.CatalogHandler
	Booking *handlers.BookingHandler
	Admin   *handlers.AdminHandler
}

// RegisterAuthRoutes registers registration, login and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthRequired())
		api.GET("/me", hb.Auth.Me)
		api.POST("/logout", hb.Auth.Logout)
	}
}

// RegisterCatalogRoutes registers the lab test catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/tests")
	{
		api.GET("", hb.Catalog.ListActive)

		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.RequireRoles(models.RoleAdmin))
		admin.GET("/all", hb.Catalog.ListAll)
		admin.POST("", hb.Catalog.AddTest)
		admin.PUT("/:id", hb.Catalog.UpdateTest)
		admin.DELETE("/:id", hb.Catalog.RemoveTest)
		admin.PATCH("/:id/toggle", hb.Catalog.ToggleTest)
	}
}

// RegisterBookingRoutes registers the booking workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.AuthRequired())
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/mine", hb.Booking.ListMine)

		staff := api.Group("")
		staff.Use(middleware.RequireRoles(models.RoleTechnician, models.RoleAdmin))
		staff.GET("/queue", hb.Booking.GetQueue)
		staff.PATCH("/:bookingId/tests/:itemId/status", hb.Booking.UpdateTestStatus)
		staff.PUT("/:bookingId/tests/:itemId/result", hb.Booking.PublishTestResult)
	}
}

// RegisterAdminRoutes registers account management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.AuthRequired(), middleware.RequireRoles(models.RoleAdmin))
	{
		api.GET("/users", hb.Admin.ListUsers)
		api.POST("/users", hb.Admin.CreateUser)
		api.DELETE("/users/:id", hb.Admin.DeleteUser)
	}
}

// RegisterHealthRoute registers a simple liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires CORS and every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
