package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gofrs/uuid/v5"
	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
)

func createServeCmd() *cobra.Command {
	var migrateFirst bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrateFirst)
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func serve(ctx context.Context, migrateFirst bool) error {
	envConfig, logger, dbStorage, err := setup()
	if err != nil {
		return err
	}
	defer dbStorage.Close()
	logger.Info("finance-server starting")

	if migrateFirst {
		if err := dbStorage.Migrate(envConfig.MigrationsPath, logger); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	broker := events.NewBroker(logger)
	if envConfig.AMQPURL != "" {
		forwarder, err := events.DialForwarder(envConfig.AMQPURL, envConfig.AMQPExchange, logger)
		if err != nil {
			return err
		}
		defer forwarder.Close()

		sub := broker.Subscribe(uuid.Nil)
		defer sub.Close()
		go forwarder.Run(ctx, sub)
		logger.WithField("exchange", envConfig.AMQPExchange).Info("events.Forwarder.started")
	}

	tokens := auth.NewIssuer(envConfig.JWTSecret, envConfig.JWTTTL)
	httpRest := api.Rest{
		Logger:         logger,
		Port:           envConfig.HTTPPort,
		AllowedOrigins: envConfig.CORSAllowedOrigins,
		Storage:        dbStorage,
		Service:        service.NewService(dbStorage, delegator, broker, tokens),
		Broker:         broker,
		Tokens:         tokens,
	}
	return httpRest.Serve(ctx)
}
