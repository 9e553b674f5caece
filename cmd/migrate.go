package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-POSService/migrations"
	"github.com/m04kA/SMC-POSService/pkg/dbmetrics"
	"github.com/m04kA/SMC-POSService/pkg/migrator"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Применить встроенные миграции схемы",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			db, err := openDatabase(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := migrator.New(dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName), migrations.FS, log).Up(cmd.Context())
			if err != nil {
				log.Error("Migration failed: %v", err)
				return err
			}

			log.Info("Migrations applied: %d", applied)
			return nil
		},
	}
}
