package primary

import (
	"context"

	"github.com/melynxis/solace/internal/models"
)

// RegistryService is the primary port for registry service CRUD.
type RegistryService interface {
	Create(ctx context.Context, req CreateRegistryRequest) (*models.RegistryService, error)
	Get(ctx context.Context, id string) (*models.RegistryService, error)
	Patch(ctx context.Context, id string, req PatchRegistryRequest) (*models.RegistryService, error)
	Delete(ctx context.Context, id string) (DeleteRegistryResponse, error)
	List(ctx context.Context, query ListRegistryQuery) ([]*models.RegistryService, error)
	Checkin(ctx context.Context, req CheckinRequest) (*models.RegistryService, error)
}

// CreateRegistryRequest carries the fields for registry service
// creation. AuthMode defaults to "none", Status to "active".
type CreateRegistryRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Config   models.Document `json:"config,omitempty"`
	AuthMode string          `json:"auth_mode,omitempty"`
	Status   string          `json:"status,omitempty"`
}

// PatchRegistryRequest carries a partial registry service update.
// At least one field must be provided.
type PatchRegistryRequest struct {
	Name     *string         `json:"name,omitempty"`
	Config   models.Document `json:"config,omitempty"`
	AuthMode *string         `json:"auth_mode,omitempty"`
	Status   *string         `json:"status,omitempty"`
}

// DeleteRegistryResponse confirms a hard delete.
type DeleteRegistryResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ListRegistryQuery carries registry list filters.
type ListRegistryQuery struct {
	Type   string
	Status string
	Limit  int
	Offset int
	Sort   string
}

// CheckinRequest is a dependent service announcing itself. The service
// is created on first checkin and marked online afterwards.
type CheckinRequest struct {
	Name   string          `json:"name"`
	Type   string          `json:"service_type"`
	APIURL string          `json:"api_url,omitempty"`
	Meta   models.Document `json:"meta,omitempty"`
}
