package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/account"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/budget"
	eventshandler "github.com/carson-networks/finance-tracker/internal/handlers/v1/events"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/health"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/named"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/reports"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/user"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/metrics"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	AllowedOrigins []string
	Storage        *storage.Storage
	Service        *service.Service
	Broker         *events.Broker
	Tokens         *auth.Issuer
}

// Handler builds the router: the OpenAPI operations under /v1 plus the plain
// /status and /metrics endpoints.
func (r *Rest) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	statusHandler := status.NewHandler(r.Storage)
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	router.Handle("/metrics", promhttp.Handler())

	config := huma.DefaultConfig("Finance Tracker API", "1.0.0")
	config.Components.Schemas = huma.NewMapRegistry("#/components/schemas/", schemaName)
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		auth.SecurityScheme: {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(router, config)
	api.UseMiddleware(logging.Middleware(r.Logger))
	api.UseMiddleware(metrics.Middleware)
	api.UseMiddleware(auth.Middleware(api, r.Tokens))

	r.register(api)
	return router
}

func (r *Rest) register(api huma.API) {
	svc := r.Service

	health.NewHandler().Register(api)

	user.NewRegisterHandler(svc.Users).Register(api)
	user.NewLoginHandler(svc.Users).Register(api)
	user.NewProfileHandler(svc.Users).Register(api)

	account.NewCreateAccountHandler(svc.Accounts).Register(api)
	account.NewListAccountsHandler(svc.Accounts).Register(api)
	account.NewGetAccountHandler(svc.Accounts).Register(api)
	account.NewUpdateAccountHandler(svc.Accounts).Register(api)
	account.NewDeleteAccountHandler(svc.Accounts).Register(api)

	named.NewHandler(named.Categories, svc.Categories).Register(api)
	named.NewHandler(named.Sources, svc.Sources).Register(api)

	transaction.NewHandler(transaction.Incomes, svc.Incomes).Register(api)
	transaction.NewHandler(transaction.Expenses, svc.Expenses).Register(api)

	budget.NewHandler(svc.Budgets).Register(api)
	budget.NewProgressHandler(svc.Budgets).Register(api)

	reports.NewGenerateReportHandler(svc.Reports).Register(api)
	reports.NewChartHandler(svc.Reports).Register(api)
	reports.NewTrendHandler(svc.Reports).Register(api)
	reports.NewExportHandler(svc.Reports).Register(api)
	reports.NewRecordsHandler(svc.Reports).Register(api)

	eventshandler.NewStreamHandler(r.Broker).Register(api)
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}
