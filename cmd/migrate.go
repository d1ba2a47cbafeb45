package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/m04kA/WeddingSalon-BookingService/internal/config"
	"github.com/m04kA/WeddingSalon-BookingService/internal/infra/storage/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage PostgreSQL schema migrations",
	}

	run := func(action func(m *migrations.Migrator, ctx context.Context) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			if cfg.Storage.Driver != config.StoragePostgres {
				return errors.New("migrations require storage.driver = \"postgres\"")
			}

			db, err := openPostgres(cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			m, err := migrations.New(db, log)
			if err != nil {
				return err
			}
			return action(m, cmd.Context())
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  run((*migrations.Migrator).Up),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			Args:  cobra.NoArgs,
			RunE:  run((*migrations.Migrator).Down),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print migration status",
			Args:  cobra.NoArgs,
			RunE:  run((*migrations.Migrator).Status),
		},
	)
	return cmd
}
