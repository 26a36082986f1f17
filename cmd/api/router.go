package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spycraft69/GAMA-Product-Request/internal/shared/middleware"
	"github.com/spycraft69/GAMA-Product-Request/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Health check, exposed bare for probes and under the API prefix
	router.GET("/health", healthCheckHandler(c))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupProductRoutes(v1, c)
		setupPublisherRoutes(v1, c)
		setupRequestRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

// ========================================
// PRODUCT ROUTES
// ========================================
// Browsing is public; the manage view and mutations are gated to
// publisher accounts.
func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthMiddleware(c.JWTManager)
	publisherOnly := middleware.PublisherMiddleware()

	products := v1.Group("/products")
	{
		products.GET("", c.ProductHandler.List)
		products.GET("/manage", auth, publisherOnly, c.ProductHandler.ListOwned)
		products.GET("/:id", c.ProductHandler.Get)
		products.POST("", auth, publisherOnly, c.ProductHandler.Create)
		products.PUT("/:id", auth, publisherOnly, c.ProductHandler.Update)
	}
}

// ========================================
// PUBLISHER ROUTES
// ========================================
// The public directory and the caller's own profile share the
// /publishers prefix.
func setupPublisherRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthMiddleware(c.JWTManager)
	publisherOnly := middleware.PublisherMiddleware()

	publishers := v1.Group("/publishers")
	{
		publishers.GET("", c.DirectoryHandler.List)
		publishers.GET("/profile", auth, publisherOnly, c.PublisherHandler.GetProfile)
		publishers.PUT("/profile", auth, publisherOnly, c.PublisherHandler.UpdateProfile)
		publishers.POST("/logo", auth, publisherOnly, c.PublisherHandler.UploadLogo)
		publishers.GET("/:id", c.DirectoryHandler.Get)
	}
}

// ========================================
// REQUEST ROUTES
// ========================================
// Creation is anonymous; reading and managing require a token.
func setupRequestRoutes(v1 *gin.RouterGroup, c *container.Container) {
	requests := v1.Group("/requests")
	{
		requests.POST("", c.RequestHandler.Create)

		authed := requests.Group("")
		authed.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			authed.GET("", c.RequestHandler.List)
			authed.GET("/:id", c.RequestHandler.Get)
			authed.PATCH("/:id/status", middleware.PublisherMiddleware(), c.RequestHandler.UpdateStatus)
		}
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   getEnv("APP_VERSION", "1.0.0"),
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}
		// Check task queue
		queueStatus := "ok"
		if appCtx.Queue == nil {
			queueStatus = "disconnected"
			health["status"] = "degraded"
		} else if err := appCtx.Queue.Ping(); err != nil {
			queueStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"queue":    queueStatus,
		}

		status := 200
		if health["status"] != "ok" {
			status = 503
		}
		c.JSON(status, health)
	}
}
