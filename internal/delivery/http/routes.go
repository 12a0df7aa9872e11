package http

import (
	"github.com/gin-gonic/gin"

	"github.com/catalogwatch/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/", handler.Root)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		watch := v1.Group("/watch")
		{
			// The scheduler and manual triggers share the same entry point,
			// so the run endpoint accepts both verbs.
			watch.GET("/run", handler.RunWatch)
			watch.POST("/run", handler.RunWatch)
			watch.GET("/snapshot", handler.GetSnapshot)
		}
	}

	return router
}
