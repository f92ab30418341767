// Package app implements the primary ports: thin orchestration over
// the core guards and the store repositories.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/melynxis/solace/internal/apperr"
	corespirit "github.com/melynxis/solace/internal/core/spirit"
	"github.com/melynxis/solace/internal/models"
	"github.com/melynxis/solace/internal/observability"
	"github.com/melynxis/solace/internal/ports/primary"
	"github.com/melynxis/solace/internal/ports/secondary"
)

// SpiritServiceImpl implements primary.SpiritService.
type SpiritServiceImpl struct {
	spirits secondary.SpiritRepository
	events  secondary.EventLog
	logger  zerolog.Logger
}

// NewSpiritService creates a SpiritService with injected dependencies.
func NewSpiritService(spirits secondary.SpiritRepository, events secondary.EventLog, logger zerolog.Logger) *SpiritServiceImpl {
	return &SpiritServiceImpl{spirits: spirits, events: events, logger: logger}
}

// Create validates input and persists a new spirit. The creation
// counter and latency histogram are fed for every attempt, failed
// ones included.
func (s *SpiritServiceImpl) Create(ctx context.Context, req primary.CreateSpiritRequest) (*models.Spirit, error) {
	start := time.Now()
	defer func() {
		observability.RecordSpiritCreation(req.Role, time.Since(start))
	}()

	if result := corespirit.ValidateCreate(req.Name, req.Role); !result.Allowed {
		return nil, apperr.New(apperr.CodeValidationFailed, "%s", result.Reason)
	}

	spirit, err := s.spirits.Create(ctx, req.Name, req.Role, req.Meta)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("spirit_id", spirit.ID).
		Str("name", spirit.Name).
		Str("role", spirit.Role).
		Msg("spirit created")
	return spirit, nil
}

// Get retrieves a spirit by ID.
func (s *SpiritServiceImpl) Get(ctx context.Context, id int64) (*models.Spirit, error) {
	return s.spirits.GetByID(ctx, id)
}

// Transition applies a lifecycle transition.
func (s *SpiritServiceImpl) Transition(ctx context.Context, id int64, req primary.TransitionRequest) (*models.Spirit, error) {
	if !req.NewState.Valid() {
		return nil, apperr.New(apperr.CodeValidationFailed, "unknown state %q", req.NewState)
	}

	spirit, err := s.spirits.Transition(ctx, id, req.NewState, req.Note)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("spirit_id", id).
		Str("state", string(spirit.State)).
		Msg("spirit state changed")
	return spirit, nil
}

// Patch applies a partial update. At least one of name/meta required.
func (s *SpiritServiceImpl) Patch(ctx context.Context, id int64, req primary.PatchSpiritRequest) (*models.Spirit, error) {
	if result := corespirit.ValidatePatch(req.Name, req.Meta); !result.Allowed {
		return nil, apperr.New(apperr.CodeValidationFailed, "%s", result.Reason)
	}
	return s.spirits.Patch(ctx, id, req.Name, req.Meta, req.Note)
}

// List retrieves spirits with normalized pagination.
func (s *SpiritServiceImpl) List(ctx context.Context, query primary.ListSpiritsQuery) ([]*models.Spirit, error) {
	return s.spirits.List(ctx, secondary.SpiritFilters{
		State:        query.State,
		Role:         query.Role,
		NameContains: query.NameContains,
		Limit:        normalizeLimit(query.Limit),
		Offset:       normalizeOffset(query.Offset),
		Sort:         query.Sort,
	})
}

// Events returns the audit trail for an existing spirit.
func (s *SpiritServiceImpl) Events(ctx context.Context, id int64) ([]*models.SpiritEvent, error) {
	if _, err := s.spirits.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.events.ListBySpirit(ctx, id)
}

// Pagination bounds: limit in [1,500] default 50, offset >= 0.
// Out-of-range values are normalized, not rejected.

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// Ensure SpiritServiceImpl implements the interface
var _ primary.SpiritService = (*SpiritServiceImpl)(nil)
