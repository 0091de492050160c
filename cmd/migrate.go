package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"superstar/internal/config"
	"superstar/internal/migrations"
	"superstar/internal/repository"
)

func newMigrateCmd() *cobra.Command {
	var migrateCmd = &cobra.Command{
		Use:   "migrate [up|down|status]",
		Short: "SQLite schema migrations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Storage.Driver != config.DriverSQLite {
				return fmt.Errorf("migrate: storage.driver is %q, nothing to migrate", cfg.Storage.Driver)
			}
			db, err := repository.OpenSQLite(cfg.Storage.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "Using DB path: %s\n", cfg.Storage.Path)

			action := "up"
			if len(args) > 0 {
				action = args[0]
			}
			switch action {
			case "up":
				return migrations.Up(db)
			case "down":
				return migrations.Down(db)
			case "status":
				return migrations.Status(db)
			default:
				return fmt.Errorf("unknown migrate action %q", action)
			}
		},
	}
	return migrateCmd
}
