// Package primary defines the primary ports (driving adapters) of the
// registry: the service interfaces the HTTP layer calls into.
package primary

import (
	"context"

	"github.com/melynxis/solace/internal/models"
)

// SpiritService is the primary port for spirit lifecycle operations.
type SpiritService interface {
	Create(ctx context.Context, req CreateSpiritRequest) (*models.Spirit, error)
	Get(ctx context.Context, id int64) (*models.Spirit, error)
	Transition(ctx context.Context, id int64, req TransitionRequest) (*models.Spirit, error)
	Patch(ctx context.Context, id int64, req PatchSpiritRequest) (*models.Spirit, error)
	List(ctx context.Context, query ListSpiritsQuery) ([]*models.Spirit, error)
	Events(ctx context.Context, id int64) ([]*models.SpiritEvent, error)
}

// CreateSpiritRequest carries the fields for spirit creation.
type CreateSpiritRequest struct {
	Name string          `json:"name"`
	Role string          `json:"role"`
	Meta models.Document `json:"meta,omitempty"`
}

// TransitionRequest carries a requested lifecycle transition.
type TransitionRequest struct {
	NewState models.SpiritState `json:"new_state"`
	Note     *string            `json:"note,omitempty"`
}

// PatchSpiritRequest carries a partial spirit update. At least one of
// Name/Meta must be provided.
type PatchSpiritRequest struct {
	Name *string         `json:"name,omitempty"`
	Meta models.Document `json:"meta,omitempty"`
	Note *string         `json:"note,omitempty"`
}

// ListSpiritsQuery carries list filters. Limit/Offset outside their
// bounds are normalized by the service, not rejected.
type ListSpiritsQuery struct {
	State        string
	Role         string
	NameContains string
	Limit        int
	Offset       int
	Sort         string
}
