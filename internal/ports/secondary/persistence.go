// Package secondary defines the secondary ports (driven adapters) of
// the registry: the interfaces through which the application reaches
// the persistent store.
package secondary

import (
	"context"

	"github.com/melynxis/solace/internal/models"
)

// SpiritRepository is the secondary port for spirit persistence.
// Every mutating method runs as a single transaction that also appends
// the corresponding audit event; no spirit mutation is observable
// without its event.
type SpiritRepository interface {
	// Create inserts a spirit in state pending, immediately advances it
	// to created and appends the create event, all in one transaction.
	Create(ctx context.Context, name, role string, meta models.Document) (*models.Spirit, error)

	// GetByID retrieves a spirit by its ID.
	GetByID(ctx context.Context, id int64) (*models.Spirit, error)

	// Transition applies a lifecycle transition and appends the
	// state_change event. Illegal transitions are rejected with a
	// conflict error and leave the persisted state untouched.
	Transition(ctx context.Context, id int64, newState models.SpiritState, note *string) (*models.Spirit, error)

	// Patch applies a partial update and appends one event per field
	// category actually provided (name_update, meta_update).
	Patch(ctx context.Context, id int64, name *string, meta models.Document, note *string) (*models.Spirit, error)

	// List retrieves spirits matching the given filters.
	List(ctx context.Context, filters SpiritFilters) ([]*models.Spirit, error)
}

// SpiritFilters contains filter, pagination and ordering options for
// spirit queries. Limit and Offset are expected pre-normalized by the
// service layer; Sort is a "field:direction" token.
type SpiritFilters struct {
	State        string
	Role         string
	NameContains string
	Limit        int
	Offset       int
	Sort         string
}

// RegistryRepository is the secondary port for registry services.
// Registry services are not lifecycle-governed and produce no events.
type RegistryRepository interface {
	// Create persists a new registry service. The record must have its
	// ID pre-populated by the service layer.
	Create(ctx context.Context, svc *models.RegistryService) error

	// GetByID retrieves a registry service by its ID.
	GetByID(ctx context.Context, id string) (*models.RegistryService, error)

	// Patch applies a partial update and bumps updated_at.
	Patch(ctx context.Context, id string, patch RegistryPatch) (*models.RegistryService, error)

	// Delete removes a registry service. Hard delete, irreversible.
	Delete(ctx context.Context, id string) error

	// List retrieves registry services matching the given filters.
	List(ctx context.Context, filters RegistryFilters) ([]*models.RegistryService, error)

	// Checkin upserts a registry service by name: creates it with
	// newID when absent, otherwise marks it online and stamps
	// last_checkin.
	Checkin(ctx context.Context, newID, name, svcType string, config models.Document) (*models.RegistryService, error)
}

// RegistryPatch carries the optional fields of a registry service
// partial update. Nil means "leave untouched".
type RegistryPatch struct {
	Name     *string
	Config   models.Document
	AuthMode *string
	Status   *string
}

// RegistryFilters contains filter, pagination and ordering options for
// registry service queries.
type RegistryFilters struct {
	Type   string
	Status string
	Limit  int
	Offset int
	Sort   string
}

// EventLog is the read side of the audit trail. Appends happen only
// inside the store adapter, in the same transaction as the mutation
// they document.
type EventLog interface {
	// ListBySpirit returns a spirit's events in chronological order.
	ListBySpirit(ctx context.Context, spiritID int64) ([]*models.SpiritEvent, error)
}

// HealthProbe reports store connectivity.
type HealthProbe interface {
	Ping(ctx context.Context) error
}
