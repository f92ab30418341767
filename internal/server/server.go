// Package server exposes the registry over HTTP. Handlers translate
// between the wire envelope and the primary ports; all domain decisions
// live below in the app layer.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/melynxis/solace/internal/observability"
	"github.com/melynxis/solace/internal/ports/primary"
)

// Server wires the primary services into a gin router.
type Server struct {
	router   *gin.Engine
	logger   zerolog.Logger
	spirits  primary.SpiritService
	registry primary.RegistryService
	rbac     primary.RBACService
	health   primary.HealthService
}

// Deps names everything the HTTP layer needs.
type Deps struct {
	Logger   zerolog.Logger
	Spirits  primary.SpiritService
	Registry primary.RegistryService
	RBAC     primary.RBACService
	Health   primary.HealthService
}

// New builds the router with middleware and all routes registered.
func New(deps Deps) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestIDMiddleware())
	router.Use(observability.RequestLogger(deps.Logger))
	router.Use(observability.RequestMetricsMiddleware())

	s := &Server{
		router:   router,
		logger:   deps.Logger,
		spirits:  deps.Spirits,
		registry: deps.Registry,
		rbac:     deps.RBAC,
		health:   deps.Health,
	}
	s.registerRoutes()
	return s
}

// Handler exposes the router for serving and for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("http_listen")
	return s.router.Run(addr)
}
