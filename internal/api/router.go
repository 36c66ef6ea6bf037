package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/meagherphilip/blogsmith/internal/auth"
	"github.com/meagherphilip/blogsmith/internal/config"
	"github.com/meagherphilip/blogsmith/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, authService *auth.Service, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authHandler := NewAuthHandler(authService, log)
	generateHandler := NewGenerateHandler(services, log)
	contentHandler := NewContentHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	requireSession := authService.Middleware()

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		api.POST("/generate", requireSession, generateHandler.CreateGeneration)
		api.GET("/generate/status", generateHandler.GetStatus)

		api.GET("/blogs", contentHandler.ListBlogs)
		api.GET("/blogs/:id", contentHandler.GetBlog)

		api.GET("/posts", contentHandler.ListPosts)
		api.GET("/posts/:slug", contentHandler.GetPost)

		api.GET("/themes", contentHandler.ListThemes)
		api.POST("/themes", requireSession, contentHandler.CreateTheme)

		api.POST("/seed", contentHandler.SeedPosts)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "blogsmith",
	})
}

// metricsHandler returns content and generation-job metrics
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		jobCounts, _ := services.Generation.CountByStatus(ctx)
		contentCounts, _ := services.Content.Counts(ctx)

		c.JSON(http.StatusOK, gin.H{
			"generations": jobCounts,
			"database":    contentCounts,
			"timestamp":   time.Now().Format(time.RFC3339),
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

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
