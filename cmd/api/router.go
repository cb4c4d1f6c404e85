package main

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/sohagbhuiyan/portfolio-api/config"
	"github.com/sohagbhuiyan/portfolio-api/internal/handlers"
	"github.com/sohagbhuiyan/portfolio-api/internal/middleware"
	"github.com/sohagbhuiyan/portfolio-api/pkg/metrics"
)

// routeHandlers groups everything the router dispatches to
type routeHandlers struct {
	contact *handlers.ContactHandler
	content *handlers.ContentHandler
	health  *handlers.HealthHandler
}

// registerAPIRoutes registers the public API routes for a given router group
func registerAPIRoutes(group *gin.RouterGroup, cfg *config.Config, h routeHandlers) {
	group.POST("/contact", middleware.BodySizeLimitMiddleware(cfg.Contact.MaxBodyBytes), h.contact.SubmitContact)

	group.GET("/profile", h.content.GetProfile)
	group.GET("/experiences", h.content.GetExperiences)
	group.GET("/projects", h.content.GetProjects)
	group.GET("/projects/:id", h.content.GetProject)
	group.GET("/skills", h.content.GetSkills)
	group.GET("/education", h.content.GetEducation)
}

func newRouter(cfg *config.Config, h routeHandlers) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := slices.Clone(cfg.Server.AllowedOrigins)
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	api := router.Group("/api")
	// Operational endpoints (not versioned)
	api.GET("/healthcheck", h.health.Healthcheck)
	api.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	// The site form posts here
	api.POST("/contact", middleware.BodySizeLimitMiddleware(cfg.Contact.MaxBodyBytes), h.contact.SubmitContact)

	registerAPIRoutes(router.Group("/api/v1"), cfg, h)

	return router
}
