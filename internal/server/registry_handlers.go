package server

import (
	"github.com/gin-gonic/gin"

	"github.com/melynxis/solace/internal/models"
	"github.com/melynxis/solace/internal/ports/primary"
)

func (s *Server) handleCreateRegistry(c *gin.Context) {
	var req primary.CreateRegistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body: %v", err)
		return
	}
	service, err := s.registry.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, gin.H{
		"id":        service.ID,
		"name":      service.Name,
		"type":      service.Type,
		"status":    service.Status,
		"auth_mode": service.AuthMode,
	})
}

func (s *Server) handleGetRegistry(c *gin.Context) {
	service, err := s.registry.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, service)
}

func (s *Server) handlePatchRegistry(c *gin.Context) {
	var req primary.PatchRegistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body: %v", err)
		return
	}
	service, err := s.registry.Patch(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, service)
}

func (s *Server) handleDeleteRegistry(c *gin.Context) {
	result, err := s.registry.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, result)
}

func (s *Server) handleListRegistry(c *gin.Context) {
	query := primary.ListRegistryQuery{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Sort:   c.DefaultQuery("sort", "updated_at:desc"),
	}
	var ok bool
	if query.Limit, ok = intQuery(c, "limit", 50); !ok {
		return
	}
	if query.Offset, ok = intQuery(c, "offset", 0); !ok {
		return
	}
	services, err := s.registry.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	if services == nil {
		services = []*models.RegistryService{}
	}
	respond(c, services)
}

func (s *Server) handleRegistryCheckin(c *gin.Context) {
	var req primary.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body: %v", err)
		return
	}
	service, err := s.registry.Checkin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, service)
}
