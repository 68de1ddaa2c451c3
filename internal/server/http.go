// Package server wires the gin router, middleware, and module handlers.
package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	assignmenthandler "nio-menu/backend/internal/assignment/handler"
	audithandler "nio-menu/backend/internal/audit/handler"
	authzhandler "nio-menu/backend/internal/authz/handler"
	"nio-menu/backend/internal/config"
	formathandler "nio-menu/backend/internal/format/handler"
	healthhandler "nio-menu/backend/internal/health/handler"
	linkhandler "nio-menu/backend/internal/phonelink/handler"
	"nio-menu/backend/internal/server/middleware"
)

// Handlers groups the module handlers mounted by NewRouter.
type Handlers struct {
	Health     *healthhandler.Handler
	Link       *linkhandler.Handler
	Authz      *authzhandler.Handler
	Audit      *audithandler.Handler
	Format     *formathandler.Handler
	Assignment *assignmenthandler.Handler
}

// NewRouter builds the gin engine with the middleware chain and all routes.
// The bearer gate covers every route except /health.
func NewRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitPerMinute).Handler())
	r.Use(otelgin.Middleware(cfg.ServiceName))

	r.GET("/health", h.Health.Check)

	api := r.Group("/", middleware.BearerToken(cfg.APIToken))
	api.POST("/link/start", h.Link.Start)
	api.POST("/link/verify", h.Link.Verify)
	api.POST("/auth", h.Authz.Authorize)
	api.POST("/audit", h.Audit.Append)
	api.GET("/formats/categories", h.Format.Categories)
	api.GET("/formats/:id", h.Format.GetByID)
	api.GET("/assignments/clients", h.Assignment.Clients)
	api.GET("/assignments/services", h.Assignment.Services)

	return r
}
