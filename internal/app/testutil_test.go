package app_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/melynxis/solace/internal/adapters/sqlstore"
	"github.com/melynxis/solace/internal/app"
	"github.com/melynxis/solace/internal/db"
)

// newSpiritService builds a spirit service over a fresh in-memory
// store.
func newSpiritService(t *testing.T) *app.SpiritServiceImpl {
	t.Helper()
	database := openTestDB(t)
	return app.NewSpiritService(
		sqlstore.NewSpiritRepository(database),
		sqlstore.NewEventRepository(database),
		zerolog.Nop(),
	)
}

// newRegistryService builds a registry service over a fresh in-memory
// store.
func newRegistryService(t *testing.T) *app.RegistryServiceImpl {
	t.Helper()
	database := openTestDB(t)
	return app.NewRegistryService(sqlstore.NewRegistryRepository(database), zerolog.Nop())
}

func openTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	database.SetMaxOpenConns(1)
	if err := database.InitSchema(context.Background()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}
