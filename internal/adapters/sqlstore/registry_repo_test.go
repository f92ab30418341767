package sqlstore_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/melynxis/solace/internal/adapters/sqlstore"
	"github.com/melynxis/solace/internal/apperr"
	"github.com/melynxis/solace/internal/models"
	"github.com/melynxis/solace/internal/ports/secondary"
)

func newRegistryService(name, svcType string) *models.RegistryService {
	return &models.RegistryService{
		ID:       uuid.NewString(),
		Name:     name,
		Type:     svcType,
		AuthMode: "none",
		Status:   "active",
	}
}

func TestRegistryCreateAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlstore.NewRegistryRepository(database)
	ctx := context.Background()

	svc := newRegistryService("memory-store", "memory")
	svc.Config = models.Document{"url": "http://localhost:8090", "pool": float64(5)}
	if err := repo.Create(ctx, svc); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, svc.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "memory-store" || got.Type != "memory" || got.Status != "active" {
		t.Errorf("unexpected record: %+v", got)
	}
	if !reflect.DeepEqual(got.Config, svc.Config) {
		t.Errorf("config round trip = %#v, want %#v", got.Config, svc.Config)
	}
	if got.LastCheckin != nil {
		t.Error("last_checkin must start unset")
	}
}

func TestRegistryCreateRequiresID(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlstore.NewRegistryRepository(database)

	err := repo.Create(context.Background(), &models.RegistryService{Name: "x", Type: "y"})
	if err == nil {
		t.Fatal("expected an error when ID is not pre-populated")
	}
}

func TestRegistryPatch(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlstore.NewRegistryRepository(database)
	ctx := context.Background()

	svc := newRegistryService("dashboard", "dashboard")
	if err := repo.Create(ctx, svc); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	status := "degraded"
	config := models.Document{"theme": "dusk"}
	updated, err := repo.Patch(ctx, svc.ID, secondary.RegistryPatch{Status: &status, Config: config})
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if updated.Status != "degraded" {
		t.Errorf("Status = %s, want degraded", updated.Status)
	}
	if !reflect.DeepEqual(updated.Config, config) {
		t.Errorf("Config = %#v, want %#v", updated.Config, config)
	}
	if updated.Name != "dashboard" || updated.AuthMode != "none" {
		t.Errorf("unprovided fields must be untouched: %+v", updated)
	}

	_, err = repo.Patch(ctx, "missing-id", secondary.RegistryPatch{Status: &status})
	if apperr.CodeOf(err) != apperr.CodeNotFound {
		t.Errorf("patch on missing id: code = %s, want NOT_FOUND", apperr.CodeOf(err))
	}
}

func TestRegistryDelete(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlstore.NewRegistryRepository(database)
	ctx := context.Background()

	err := repo.Delete(ctx, "never-existed")
	if apperr.CodeOf(err) != apperr.CodeNotFound {
		t.Errorf("delete on missing id: code = %s, want NOT_FOUND", apperr.CodeOf(err))
	}

	svc := newRegistryService("wiki-ingest", "other")
	if err := repo.Create(ctx, svc); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Delete(ctx, svc.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err = repo.GetByID(ctx, svc.ID)
	if apperr.CodeOf(err) != apperr.CodeNotFound {
		t.Errorf("get after delete: code = %s, want NOT_FOUND", apperr.CodeOf(err))
	}
}

func TestRegistryList(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlstore.NewRegistryRepository(database)
	ctx := context.Background()

	a := newRegistryService("memory-a", "memory")
	b := newRegistryService("memory-b", "memory")
	b.Status = "offline"
	c := newRegistryService("control", "control")
	for _, svc := range []*models.RegistryService{a, b, c} {
		if err := repo.Create(ctx, svc); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	byType, err := repo.List(ctx, secondary.RegistryFilters{Type: "memory", Limit: 50, Sort: "name:asc"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byType) != 2 || byType[0].Name != "memory-a" {
		t.Errorf("type filter returned %+v", names(byType))
	}

	byStatus, err := repo.List(ctx, secondary.RegistryFilters{Status: "offline", Limit: 50})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ID != b.ID {
		t.Errorf("status filter returned %+v", names(byStatus))
	}
}

func TestRegistryListSortFallbacks(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlstore.NewRegistryRepository(database)
	ctx := context.Background()

	a := newRegistryService("alpha", "memory")
	b := newRegistryService("beta", "memory")
	for _, svc := range []*models.RegistryService{a, b} {
		if err := repo.Create(ctx, svc); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	// Distinct updated_at values so ordering is deterministic; beta is
	// the more recently touched record.
	for i, id := range []string{a.ID, b.ID} {
		_, err := database.ExecContext(ctx,
			"UPDATE registry_services SET updated_at = ? WHERE id = ?",
			timeStamp(2024, i+1), id,
		)
		if err != nil {
			t.Fatalf("failed to pin updated_at: %v", err)
		}
	}

	t.Run("unknown field falls back to updated_at", func(t *testing.T) {
		got, err := repo.List(ctx, secondary.RegistryFilters{Limit: 50, Sort: "config:asc"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 2 || got[0].Name != "beta" {
			t.Errorf("order = %v, want [beta alpha]", names(got))
		}
	})

	t.Run("only literal asc selects ascending", func(t *testing.T) {
		got, err := repo.List(ctx, secondary.RegistryFilters{Limit: 50, Sort: "name:ASC"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 2 || got[0].Name != "beta" {
			t.Errorf("order = %v, want descending [beta alpha]", names(got))
		}

		got, err = repo.List(ctx, secondary.RegistryFilters{Limit: 50, Sort: "name:asc"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 2 || got[0].Name != "alpha" {
			t.Errorf("order = %v, want ascending [alpha beta]", names(got))
		}
	})
}

func TestRegistryCheckin(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlstore.NewRegistryRepository(database)
	ctx := context.Background()

	// First checkin creates the record.
	first, err := repo.Checkin(ctx, uuid.NewString(), "spirit-eira", "spirit", models.Document{"api_url": "http://eira:9001"})
	if err != nil {
		t.Fatalf("first Checkin failed: %v", err)
	}
	if first.Status != "online" {
		t.Errorf("Status = %s, want online", first.Status)
	}
	if first.LastCheckin == nil {
		t.Error("last_checkin must be stamped on checkin")
	}

	// Second checkin by the same name updates in place.
	second, err := repo.Checkin(ctx, uuid.NewString(), "spirit-eira", "spirit", nil)
	if err != nil {
		t.Fatalf("second Checkin failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("checkin must upsert by name; got new id %s", second.ID)
	}
	if !reflect.DeepEqual(second.Config, first.Config) {
		t.Errorf("nil config on checkin must not clear the stored config")
	}

	all, err := repo.List(ctx, secondary.RegistryFilters{Limit: 50})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected a single record after two checkins, got %d", len(all))
	}
}

func names(services []*models.RegistryService) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.Name
	}
	return out
}
