package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes mounts the spirit and registry resources under both
// the legacy top-level paths and the /v1 prefix. Meta endpoints keep
// their established paths.
func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealthPlain)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, g := range []*gin.RouterGroup{
		s.router.Group(""),
		s.router.Group("/v1"),
	} {
		g.POST("/spirits", s.handleCreateSpirit)
		g.GET("/spirits", s.handleListSpirits)
		g.GET("/spirits/:id", s.handleGetSpirit)
		g.PUT("/spirits/:id/state", s.handleTransitionSpirit)
		g.PATCH("/spirits/:id", s.handlePatchSpirit)
		g.GET("/spirits/:id/events", s.handleSpiritEvents)

		g.POST("/registry", s.handleCreateRegistry)
		g.GET("/registry", s.handleListRegistry)
		g.POST("/registry/checkin", s.handleRegistryCheckin)
		g.GET("/registry/:id", s.handleGetRegistry)
		g.PATCH("/registry/:id", s.handlePatchRegistry)
		g.DELETE("/registry/:id", s.handleDeleteRegistry)
	}

	v1 := s.router.Group("/v1")
	v1.GET("/healthz", s.handleHealthz)
	v1.GET("/readyz", s.handleReadyz)
	v1.GET("/version", s.handleVersion)
	v1.GET("/rbac/roles", s.handleRBACRoles)
	v1.POST("/rbac/check", s.handleRBACCheck)
}
