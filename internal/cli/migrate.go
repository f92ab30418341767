package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/melynxis/solace/internal/config"
	"github.com/melynxis/solace/internal/db"
)

// MigrateCmd returns the migrate command: apply the schema and exit.
func MigrateCmd() *cobra.Command {
	var (
		configPath string
		dbPath     string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long: `Apply the registry schema to the configured database and exit.
Statements are idempotent; running migrate twice is safe.

Examples:
  solace-registry migrate
  solace-registry migrate --db postgres://solace@localhost/solace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DB = dbPath
			}

			database, err := db.Open(cfg.DB)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer database.Close()

			if err := database.InitSchema(cmd.Context()); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}

			fmt.Printf("%s schema applied (%s, dialect: %s)\n",
				color.New(color.FgGreen).Sprint("OK"), cfg.DB, database.Dialect())
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&dbPath, "db", "", "database path or postgres:// DSN (overrides config)")

	return cmd
}
