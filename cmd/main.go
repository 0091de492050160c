package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"superstar/internal/app"
	"superstar/internal/config"
	"superstar/internal/logging"
)

// @title Superstar Orders API
// @version 1.0
// @description Order ledger for a fashion-retail shop: seller workflow, delivery hand-off and dashboards.
// @BasePath /api/v1

// set by the root command before any subcommand runs
var (
	cfg    *config.Config
	logger zerolog.Logger
)

// newRootCmd builds the whole command tree; flags live in closures, so every tree starts clean.
func newRootCmd() *cobra.Command {
	var configPath string
	rootCmd := &cobra.Command{
		Use:           "superstar",
		Short:         "Superstar order ledger",
		Long:          `Seller and admin order tracking: HTTP API, change feed and command-line tools.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			// stdout belongs to command output
			logger = logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Writer: os.Stderr})
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml or /etc/superstar/config.yaml)")

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd(), newOrdersCmd(), newDashboardCmd())
	return rootCmd
}

func openApp(ctx context.Context) (*app.App, error) {
	return app.New(ctx, cfg, logger)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
