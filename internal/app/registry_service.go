package app

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/melynxis/solace/internal/apperr"
	"github.com/melynxis/solace/internal/models"
	"github.com/melynxis/solace/internal/ports/primary"
	"github.com/melynxis/solace/internal/ports/secondary"
)

// RegistryServiceImpl implements primary.RegistryService.
type RegistryServiceImpl struct {
	registry secondary.RegistryRepository
	logger   zerolog.Logger
}

// NewRegistryService creates a RegistryService with injected dependencies.
func NewRegistryService(registry secondary.RegistryRepository, logger zerolog.Logger) *RegistryServiceImpl {
	return &RegistryServiceImpl{registry: registry, logger: logger}
}

// Create persists a new registry service with a generated UUID.
func (s *RegistryServiceImpl) Create(ctx context.Context, req primary.CreateRegistryRequest) (*models.RegistryService, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.New(apperr.CodeValidationFailed, "name is required")
	}
	if strings.TrimSpace(req.Type) == "" {
		return nil, apperr.New(apperr.CodeValidationFailed, "type is required")
	}

	svc := &models.RegistryService{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Type:     req.Type,
		Config:   req.Config,
		AuthMode: req.AuthMode,
		Status:   req.Status,
	}
	if svc.AuthMode == "" {
		svc.AuthMode = "none"
	}
	if svc.Status == "" {
		svc.Status = "active"
	}

	if err := s.registry.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("registry_id", svc.ID).
		Str("name", svc.Name).
		Str("type", svc.Type).
		Msg("registry service created")
	return s.registry.GetByID(ctx, svc.ID)
}

// Get retrieves a registry service by ID.
func (s *RegistryServiceImpl) Get(ctx context.Context, id string) (*models.RegistryService, error) {
	return s.registry.GetByID(ctx, id)
}

// Patch applies a partial update; at least one field is required.
func (s *RegistryServiceImpl) Patch(ctx context.Context, id string, req primary.PatchRegistryRequest) (*models.RegistryService, error) {
	if req.Name == nil && req.Config == nil && req.AuthMode == nil && req.Status == nil {
		return nil, apperr.New(apperr.CodeValidationFailed, "no changes provided")
	}
	return s.registry.Patch(ctx, id, secondary.RegistryPatch{
		Name:     req.Name,
		Config:   req.Config,
		AuthMode: req.AuthMode,
		Status:   req.Status,
	})
}

// Delete removes a registry service. Hard delete.
func (s *RegistryServiceImpl) Delete(ctx context.Context, id string) (primary.DeleteRegistryResponse, error) {
	if err := s.registry.Delete(ctx, id); err != nil {
		return primary.DeleteRegistryResponse{}, err
	}
	s.logger.Info().Str("registry_id", id).Msg("registry service deleted")
	return primary.DeleteRegistryResponse{ID: id, Deleted: true}, nil
}

// List retrieves registry services with normalized pagination.
func (s *RegistryServiceImpl) List(ctx context.Context, query primary.ListRegistryQuery) ([]*models.RegistryService, error) {
	return s.registry.List(ctx, secondary.RegistryFilters{
		Type:   query.Type,
		Status: query.Status,
		Limit:  normalizeLimit(query.Limit),
		Offset: normalizeOffset(query.Offset),
		Sort:   query.Sort,
	})
}

// Checkin upserts a service record by name, marking it online. The
// advertised API URL travels inside the stored config document.
func (s *RegistryServiceImpl) Checkin(ctx context.Context, req primary.CheckinRequest) (*models.RegistryService, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.New(apperr.CodeValidationFailed, "name is required")
	}
	if strings.TrimSpace(req.Type) == "" {
		return nil, apperr.New(apperr.CodeValidationFailed, "service_type is required")
	}

	config := models.Document{}
	for k, v := range req.Meta {
		config[k] = v
	}
	if req.APIURL != "" {
		config["api_url"] = req.APIURL
	}
	if len(config) == 0 {
		config = nil
	}

	svc, err := s.registry.Checkin(ctx, uuid.NewString(), req.Name, req.Type, config)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("registry_id", svc.ID).
		Str("name", svc.Name).
		Msg("registry service checked in")
	return svc, nil
}

// Ensure RegistryServiceImpl implements the interface
var _ primary.RegistryService = (*RegistryServiceImpl)(nil)
