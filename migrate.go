package main

import (
	"github.com/spf13/cobra"
)

func createMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "apply pending database migrations",
		RunE: func(*cobra.Command, []string) error {
			envConfig, logger, dbStorage, err := setup()
			if err != nil {
				return err
			}
			defer dbStorage.Close()
			return dbStorage.Migrate(envConfig.MigrationsPath, logger)
		},
	}
}
