package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "finance-server",
		Short:         "Personal finance tracking API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(createServeCmd(), createMigrateCmd(), createExportCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and opens the database shared by every command.
func setup() (*config.Config, *logrus.Logger, *storage.Storage, error) {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}

	logger := logging.SetupLogging(envConfig.LogLevel)

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		return nil, nil, nil, err
	}
	return envConfig, logger, dbStorage, nil
}
