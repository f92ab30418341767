package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melynxis/solace/internal/ports/primary"
	"github.com/melynxis/solace/internal/version"
)

// handleHealthPlain is the bare probe for load balancers: "ok" or 500.
func (s *Server) handleHealthPlain(c *gin.Context) {
	if err := s.health.Check(c.Request.Context()); err != nil {
		c.String(http.StatusInternalServerError, "unavailable")
		return
	}
	c.String(http.StatusOK, "ok")
}

func (s *Server) handleHealthz(c *gin.Context) {
	if err := s.health.Check(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respond(c, gin.H{"status": "ok"})
}

// handleReadyz shares the store round trip with liveness; there is no
// deeper readiness signal to consult.
func (s *Server) handleReadyz(c *gin.Context) {
	if err := s.health.Check(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respond(c, gin.H{"ready": true})
}

func (s *Server) handleVersion(c *gin.Context) {
	respond(c, gin.H{"version": version.String()})
}

func (s *Server) handleRBACRoles(c *gin.Context) {
	roles, err := s.rbac.Roles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, gin.H{"roles": roles})
}

func (s *Server) handleRBACCheck(c *gin.Context) {
	var req primary.RBACCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body: %v", err)
		return
	}
	allowed, err := s.rbac.Check(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, gin.H{"allowed": allowed})
}
