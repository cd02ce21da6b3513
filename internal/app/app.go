// Package app wires configuration, infrastructure, services and transport
// into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"mpreview/internal/config"
	"mpreview/internal/errors"
	"mpreview/internal/infrastructure"
	custommw "mpreview/internal/middleware"
	"mpreview/internal/services"
	"mpreview/internal/storage"
	transporthttp "mpreview/internal/transport/http"
)

// Application holds all initialized components.
type Application struct {
	config  *config.Config
	logger  *slog.Logger
	metrics *infrastructure.Metrics
	otel    *infrastructure.OTelProviders
	store   *storage.GCSClient
	server  *http.Server
}

// NewApplication initializes the application: configuration, logging,
// tracing, metrics, the storage client, the data service and the HTTP
// server, in that order.
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	metrics := infrastructure.NewMetrics()

	store, err := storage.NewGCSClient(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}

	dataService, err := services.NewDataService(cfg, store, logger, metrics, otelProviders.Tracer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize data service: %w", err)
	}

	app := &Application{
		config:  cfg,
		logger:  logger,
		metrics: metrics,
		otel:    otelProviders,
		store:   store,
	}

	router := app.setupRouter(dataService)
	app.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return app, nil
}

func (app *Application) setupRouter(dataService *services.DataService) chi.Router {
	r := chi.NewRouter()

	errorHandler := errors.NewErrorHandler(app.logger, false)

	r.Use(custommw.RequestID)
	r.Use(custommw.RealIP)
	r.Use(custommw.StructuredLogger(app.logger))
	r.Use(custommw.Recoverer(errorHandler.HandlePanic))
	r.Use(custommw.Compress(5))
	r.Use(custommw.SecurityHeaders)
	r.Use(custommw.CORS(custommw.CORSConfig{
		AllowedOrigins: app.config.Security.AllowedOrigins,
	}))

	if app.config.Security.RateLimit.Enabled {
		limiter := custommw.NewRateLimiter(
			app.config.Security.RateLimit.RPS,
			app.config.Security.RateLimit.Burst,
			app.logger,
		)
		r.Use(limiter.Handler)
	}

	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	dataHandler := transporthttp.NewDataHandler(dataService, app.logger)
	healthHandler := transporthttp.NewHealthHandler()

	r.Mount("/api", dataHandler.Routes())
	r.Mount("/api/health", healthHandler.Routes())
	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", app.metrics.Handler())

	return r
}

// Run starts the HTTP server and blocks until shutdown completes. SIGINT and
// SIGTERM trigger graceful shutdown.
func (app *Application) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)
	go func() {
		app.logger.Info("server starting",
			slog.String("addr", app.server.Addr),
			slog.String("version", infrastructure.ServiceVersion))
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		app.logger.Info("shutdown started", slog.String("signal", sig.String()))
		return app.Shutdown()
	}
}

// Shutdown drains the server and releases resources within the configured
// shutdown timeout.
func (app *Application) Shutdown() error {
	timeout := app.config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
		if closeErr := app.server.Close(); closeErr != nil {
			return fmt.Errorf("failed to close server: %w", closeErr)
		}
	}

	if err := app.otel.Shutdown(ctx); err != nil {
		app.logger.Warn("tracer shutdown failed", slog.String("error", err.Error()))
	}
	if err := app.store.Close(); err != nil {
		app.logger.Warn("storage client close failed", slog.String("error", err.Error()))
	}
	if err := infrastructure.CloseLogFile(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}

	app.logger.Info("shutdown complete")
	return nil
}
