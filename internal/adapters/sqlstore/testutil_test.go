// Package sqlstore_test contains integration tests for the SQL
// repositories. They run against in-memory SQLite using the
// authoritative schema from internal/db, so a repository referencing a
// column that does not exist fails immediately.
package sqlstore_test

import (
	"context"
	"testing"

	"github.com/melynxis/solace/internal/adapters/sqlstore"
	"github.com/melynxis/solace/internal/db"
	"github.com/melynxis/solace/internal/models"
)

// setupTestDB opens an in-memory database with the authoritative
// schema applied. Single shared setup for all repository tests.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// One pooled connection so every query sees the same :memory: db.
	database.SetMaxOpenConns(1)

	if err := database.InitSchema(context.Background()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// seedSpirit creates a spirit through the repository (so the creation
// invariants hold) and returns it.
func seedSpirit(t *testing.T, database *db.DB, name, role string, meta models.Document) *models.Spirit {
	t.Helper()

	repo := sqlstore.NewSpiritRepository(database)
	spirit, err := repo.Create(context.Background(), name, role, meta)
	if err != nil {
		t.Fatalf("failed to seed spirit: %v", err)
	}
	return spirit
}

// countEvents returns the number of audit rows for a spirit.
func countEvents(t *testing.T, database *db.DB, spiritID int64) int {
	t.Helper()

	var count int
	err := database.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM spirit_events WHERE spirit_id = ?", spiritID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("failed to count events: %v", err)
	}
	return count
}
