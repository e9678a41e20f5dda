// File: labtrack/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labtrack/config"
	"labtrack/database"
	bookingRepoPkg "labtrack/database/repository/booking"
	catalogRepoPkg "labtrack/database/repository/catalog"
	userRepoPkg "labtrack/database/repository/user"
	"labtrack/handlers"
	"labtrack/middleware"
	"labtrack/routes"
	bookingSvc "labtrack/services/booking"
	catalogSvc "labtrack/services/catalog"
	userSvc "labtrack/services/user"
	"labtrack/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &userSvc.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	catalogService := &catalogSvc.DefaultCatalogService{
		Repo: catalogRepo,
	}
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:    bookingRepo,
		Catalog: catalogRepo,
		Users:   userRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:    handlers.NewAuthHandler(userService),
		Catalog: handlers.NewCatalogHandler(catalogService),
		Booking: handlers.NewBookingHandler(bookingService),
		Admin:   handlers.NewAdminHandler(userService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
