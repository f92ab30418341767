package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/melynxis/solace/internal/config"
	"github.com/melynxis/solace/internal/wire"
)

// ServeCmd returns the serve command, the long-running HTTP process.
func ServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		dbPath     string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the registry HTTP server",
		Long: `Run the spirit lifecycle registry as an HTTP server.

Configuration is read from the TOML file (if present), then from
SOLACE_ADDR / SOLACE_DB / SOLACE_LOG_LEVEL, then from flags.

Examples:
  solace-registry serve
  solace-registry serve --addr :8030 --db /var/lib/solace/registry.db
  solace-registry serve --config /etc/solace/registry.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if dbPath != "" {
				cfg.DB = dbPath
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			app, err := wire.Build(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			fmt.Printf("%s listening on %s (db: %s)\n",
				color.New(color.FgGreen).Sprint("solace-registry"), cfg.Addr, cfg.DB)
			return app.Server.Run(cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "database path or postgres:// DSN (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}
