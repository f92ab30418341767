package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/melynxis/solace/internal/cli"
	"github.com/melynxis/solace/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "solace-registry",
		Short:   "Solace - spirit lifecycle registry",
		Version: version.String(),
		Long: `Solace tracks named worker entities (spirits) through an enforced
lifecycle state machine, records an immutable audit trail of every
mutation, and keeps a registry of dependent services that check in.`,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
