package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consultancy-ledger/internal/api"
	"consultancy-ledger/internal/batch"
	"consultancy-ledger/internal/config"
	"consultancy-ledger/internal/domain/billing"
	"consultancy-ledger/internal/domain/catalog"
	"consultancy-ledger/internal/domain/customer"
	"consultancy-ledger/internal/domain/ledger"
	"consultancy-ledger/internal/infrastructure/database/postgres"
	"consultancy-ledger/internal/infrastructure/database/sqlite"
	"consultancy-ledger/internal/infrastructure/logging"

	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// repositories groups the storage implementations behind the domain
// interfaces, so the rest of main does not care which backend is active.
type repositories struct {
	customers customer.CustomerRepository
	entries   ledger.LedgerRepository
	catalog   catalog.CatalogRepository
	close     func()
}

func main() {
	cfg, logger := initializeApp()

	repos := initializeStorage(cfg, logger)
	defer repos.close()

	services := initializeServices(repos, logger)

	snapshotJob := batch.NewReceivablesSnapshotJob(repos.customers, repos.entries, logger)
	cronScheduler := startBatchJobs(cfg, logger, snapshotJob)

	router := api.SetupRouter(services, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, cronScheduler, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logger)
	slog.SetDefault(logger)
	logger.Info("Application starting...", "config_source", viper.ConfigFileUsed())

	return cfg, logger
}

// initializeStorage opens the configured backend and runs schema migration.
// A configured database.url selects Postgres; otherwise the embedded SQLite
// file at database.path is used.
func initializeStorage(cfg *config.Config, logger *slog.Logger) repositories {
	ctx := context.Background()

	if cfg.Database.UsePostgres() {
		logger.Info("Initializing PostgreSQL connection pool...")
		dbPool, err := postgres.NewConnectionPool(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("Failed to initialize database connection pool", "error", err)
			os.Exit(1)
		}
		if err := postgres.Migrate(ctx, dbPool, logger); err != nil {
			logger.Error("Failed to migrate database schema", "error", err)
			dbPool.Close()
			os.Exit(1)
		}
		return repositories{
			customers: postgres.NewCustomerRepository(dbPool, logger),
			entries:   postgres.NewLedgerRepository(dbPool, logger),
			catalog:   postgres.NewCatalogRepository(dbPool, logger),
			close: func() {
				logger.Info("Closing database connection pool...")
				dbPool.Close()
			},
		}
	}

	logger.Info("Initializing SQLite database...", "path", cfg.Database.Path)
	db, err := sqlite.Open(cfg.Database.Path, logger)
	if err != nil {
		logger.Error("Failed to open SQLite database", "error", err)
		os.Exit(1)
	}
	if err := sqlite.Migrate(ctx, db, logger); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		closeSQLite(db, logger)
		os.Exit(1)
	}
	return repositories{
		customers: sqlite.NewCustomerRepository(db, logger),
		entries:   sqlite.NewLedgerRepository(db, logger),
		catalog:   sqlite.NewCatalogRepository(db, logger),
		close: func() {
			closeSQLite(db, logger)
		},
	}
}

func closeSQLite(db *sqlx.DB, logger *slog.Logger) {
	logger.Info("Closing SQLite database...")
	if err := db.Close(); err != nil {
		logger.Error("Failed to close SQLite database", "error", err)
	}
}

func initializeServices(repos repositories, logger *slog.Logger) api.Services {
	logger.Info("Initializing application components...")
	customerService := customer.NewCustomerService(repos.customers, logger)
	return api.Services{
		Customers: customerService,
		Entries:   ledger.NewServiceEntryService(repos.entries, customerService, logger),
		Payments:  ledger.NewPaymentService(repos.entries, customerService, logger),
		Catalog:   catalog.NewCatalogService(repos.catalog, logger),
		Billing:   billing.NewBillingService(repos.customers, repos.entries, logger),
	}
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			serverErrors <- err
		} else {
			logger.Info("Server closed gracefully.")
			serverErrors <- nil
		}
	}()
	return srv, serverErrors, shutdownChan
}

func startBatchJobs(cfg *config.Config, logger *slog.Logger, snapshotJob *batch.ReceivablesSnapshotJob) *cron.Cron {
	logger.Info("Initializing batch job scheduler...")
	c := cron.New()

	scheduleSpec := cfg.Batch.ReceivablesSnapshotSchedule
	if scheduleSpec == "" {
		scheduleSpec = "0 2 * * *"
		logger.Warn("Receivables snapshot schedule not configured, using default", "schedule", scheduleSpec)
	}
	jobTimeout := cfg.Batch.ReceivablesSnapshotTimeout
	if jobTimeout <= 0 {
		jobTimeout = 1 * time.Hour
	}

	jobID, err := c.AddJob(scheduleSpec, cron.FuncJob(func() {
		jobLogger := logger.With("job_name", "ReceivablesSnapshot")
		jobLogger.Info("Cron triggered: Running receivables snapshot job.")

		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if runErr := snapshotJob.Run(ctx); runErr != nil {
			jobLogger.Error("Receivables snapshot job finished with error", slog.Any("error", runErr))
		} else {
			jobLogger.Info("Receivables snapshot job finished successfully.")
		}
	}))
	if err != nil {
		logger.Error("Failed to schedule receivables snapshot job", "schedule", scheduleSpec, slog.Any("error", err))
	} else {
		logger.Info("Scheduled receivables snapshot job", "schedule", scheduleSpec, "job_id", jobID)
	}

	c.Start()
	logger.Info("Cron scheduler started.")
	return c
}

func handleShutdown(srv *http.Server, cronScheduler *cron.Cron,
	shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	logger.Info("Shutdown handler started. Waiting for signal or server error...")

	triggerReason := waitForShutdownTrigger(shutdownChan, serverErrors, logger)

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)

	stopCronScheduler(cronScheduler, logger)
	shutdownHTTPServer(srv, serverErrors, logger)

	logger.Info("Application shutdown process complete.")
}

func waitForShutdownTrigger(shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) string {
	select {
	case sig := <-shutdownChan:
		logger.Info("Shutdown signal received.", "signal", sig.String())
		return "signal: " + sig.String()
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server exited unexpectedly before signal", "error", err)
			os.Exit(1)
		}
		logger.Info("Server goroutine finished before signal.", "error", err)
		return "server exited"
	}
}

func stopCronScheduler(cronScheduler *cron.Cron, logger *slog.Logger) {
	logger.Info("Stopping cron scheduler...")
	cronCtx := cronScheduler.Stop()
	select {
	case <-cronCtx.Done():
		logger.Info("Cron scheduler stopped gracefully.")
	case <-time.After(15 * time.Second):
		logger.Warn("Cron scheduler shutdown timed out.")
	}
}

func shutdownHTTPServer(srv *http.Server, serverErrors <-chan error, logger *slog.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server graceful shutdown failed", "error", err)
		} else {
			logger.Info("HTTP server shutdown initiated.")
		}
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}

	logger.Info("Waiting for server goroutine to confirm exit...")
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Server goroutine exited with unexpected error after shutdown", "error", err)
		} else {
			logger.Info("Server goroutine confirmed exit.")
		}
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for server goroutine confirmation.")
	}
}
