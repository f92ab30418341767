// Package wire assembles the registry process: store, repositories,
// services, and the HTTP server, in dependency order.
package wire

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/melynxis/solace/internal/adapters/sqlstore"
	"github.com/melynxis/solace/internal/app"
	"github.com/melynxis/solace/internal/config"
	"github.com/melynxis/solace/internal/db"
	"github.com/melynxis/solace/internal/observability"
	"github.com/melynxis/solace/internal/server"
)

// Application holds the composed process. Close releases the store.
type Application struct {
	Config config.Config
	Logger zerolog.Logger
	DB     *db.DB
	Server *server.Server
}

// Build opens the store, applies the schema, and wires repositories
// through services into the HTTP server.
func Build(ctx context.Context, cfg config.Config) (*Application, error) {
	logger := observability.NewLogger(cfg.LogLevel)

	database, err := db.Open(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := database.InitSchema(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	observability.RegisterMetrics()

	spirits := app.NewSpiritService(
		sqlstore.NewSpiritRepository(database),
		sqlstore.NewEventRepository(database),
		logger,
	)
	registry := app.NewRegistryService(sqlstore.NewRegistryRepository(database), logger)

	srv := server.New(server.Deps{
		Logger:   logger,
		Spirits:  spirits,
		Registry: registry,
		RBAC:     app.NewRBACService(),
		Health:   app.NewHealthService(database),
	})

	return &Application{
		Config: cfg,
		Logger: logger,
		DB:     database,
		Server: srv,
	}, nil
}

// Close releases process resources.
func (a *Application) Close() error {
	return a.DB.Close()
}
