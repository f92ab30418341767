package app

import (
	"context"

	"github.com/melynxis/solace/internal/apperr"
	"github.com/melynxis/solace/internal/ports/primary"
	"github.com/melynxis/solace/internal/ports/secondary"
)

// HealthServiceImpl implements primary.HealthService with a store
// round trip. Liveness and readiness share the same check.
type HealthServiceImpl struct {
	probe secondary.HealthProbe
}

// NewHealthService creates a HealthService over the store probe.
func NewHealthService(probe secondary.HealthProbe) *HealthServiceImpl {
	return &HealthServiceImpl{probe: probe}
}

// Check issues a trivial round trip against the store.
func (s *HealthServiceImpl) Check(ctx context.Context) error {
	if err := s.probe.Ping(ctx); err != nil {
		return apperr.Wrap(apperr.CodeInternal, err, "db_error")
	}
	return nil
}

// Ensure HealthServiceImpl implements the interface
var _ primary.HealthService = (*HealthServiceImpl)(nil)
