package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/melynxis/solace/internal/models"
	"github.com/melynxis/solace/internal/ports/primary"
)

func spiritID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondValidation(c, "invalid spirit id %q", c.Param("id"))
		return 0, false
	}
	return id, true
}

func (s *Server) handleCreateSpirit(c *gin.Context) {
	var req primary.CreateSpiritRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body: %v", err)
		return
	}
	spirit, err := s.spirits.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, gin.H{
		"id":    spirit.ID,
		"name":  spirit.Name,
		"role":  spirit.Role,
		"state": spirit.State,
	})
}

func (s *Server) handleGetSpirit(c *gin.Context) {
	id, ok := spiritID(c)
	if !ok {
		return
	}
	spirit, err := s.spirits.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, spirit)
}

func (s *Server) handleTransitionSpirit(c *gin.Context) {
	id, ok := spiritID(c)
	if !ok {
		return
	}
	var req primary.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body: %v", err)
		return
	}
	spirit, err := s.spirits.Transition(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, spirit)
}

func (s *Server) handlePatchSpirit(c *gin.Context) {
	id, ok := spiritID(c)
	if !ok {
		return
	}
	var req primary.PatchSpiritRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "invalid request body: %v", err)
		return
	}
	spirit, err := s.spirits.Patch(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, spirit)
}

func (s *Server) handleListSpirits(c *gin.Context) {
	query := primary.ListSpiritsQuery{
		State:        c.Query("state"),
		Role:         c.Query("role"),
		NameContains: c.Query("q"),
		Sort:         c.DefaultQuery("sort", "updated_at:desc"),
	}
	var ok bool
	if query.Limit, ok = intQuery(c, "limit", 50); !ok {
		return
	}
	if query.Offset, ok = intQuery(c, "offset", 0); !ok {
		return
	}
	spirits, err := s.spirits.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	if spirits == nil {
		spirits = []*models.Spirit{}
	}
	respond(c, spirits)
}

func (s *Server) handleSpiritEvents(c *gin.Context) {
	id, ok := spiritID(c)
	if !ok {
		return
	}
	events, err := s.spirits.Events(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if events == nil {
		events = []*models.SpiritEvent{}
	}
	respond(c, events)
}

func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondValidation(c, "invalid %s %q", name, raw)
		return 0, false
	}
	return v, true
}
