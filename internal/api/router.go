package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/project-showcase-api/internal/config"
	"github.com/project-showcase-api/internal/service"
	"github.com/rs/zerolog"
)

// Pinger reports backing store reachability for the health endpoint
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, db Pinger, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Handlers
	projectHandler := NewProjectHandler(services, log)
	adminHandler := NewAdminHandler(services, log)
	uploadHandler := NewUploadHandler(services, cfg, log)
	authHandler := NewAuthHandler(cfg, log)

	// Health check
	router.GET("/health", healthCheck(services, db))

	// Uploaded assets are served from disk under their public URL prefix
	router.Static("/uploads", cfg.Upload.Dir)

	// API v1
	v1 := router.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		// Public listing surface
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/featured", projectHandler.ListFeatured)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("/:id/view", projectHandler.IncrementView)
			projects.POST("/:id/like", projectHandler.IncrementLike)
		}

		// Admin management surface
		admin := v1.Group("/admin", adminAuthMiddleware(cfg.Auth.TokenSecret, log))
		{
			admin.GET("/projects", adminHandler.ListProjects)
			admin.POST("/projects", adminHandler.CreateProject)
			admin.PUT("/projects/:id", adminHandler.UpdateProject)
			admin.DELETE("/projects/:id", adminHandler.DeleteProject)
			admin.POST("/uploads", uploadHandler.UploadImage)
			admin.GET("/storage/health", uploadHandler.VerifyStorage)
		}
	}

	return router
}

// healthCheck returns the health status with store reachability
func healthCheck(services *service.Services, db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		storeStatus := "reachable"
		if db == nil {
			storeStatus = "unknown"
		} else if err := db.HealthCheck(ctx); err != nil {
			storeStatus = "unreachable"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":       "healthy",
			"record_store": storeStatus,
			"projects":     services.Project.Count(ctx),
			"timestamp":    time.Now().Format(time.RFC3339),
			"service":      "project-showcase-api",
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}
