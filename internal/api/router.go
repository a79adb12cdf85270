package api

import (
	"log/slog"
	"net/http"
	"time"

	"consultancy-ledger/internal/api/handler"
	mw "consultancy-ledger/internal/api/middleware"
	"consultancy-ledger/internal/config"
	"consultancy-ledger/internal/domain/billing"
	"consultancy-ledger/internal/domain/catalog"
	"consultancy-ledger/internal/domain/customer"
	"consultancy-ledger/internal/domain/ledger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles the domain services the router exposes.
type Services struct {
	Customers customer.CustomerService
	Entries   ledger.ServiceEntryService
	Payments  ledger.PaymentService
	Catalog   catalog.CatalogService
	Billing   billing.BillingService
}

func SetupRouter(services Services, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupCustomerRoutes(router, services, logger)
	setupCatalogRoutes(router, services.Catalog, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupCustomerRoutes(router chi.Router, services Services, logger *slog.Logger) {
	customerHandler := handler.NewCustomerHandler(services.Customers, logger)
	ledgerHandler := handler.NewLedgerHandler(services.Entries, services.Payments, logger)
	billHandler := handler.NewBillHandler(services.Billing, logger)

	router.Route("/customers", func(r chi.Router) {
		r.Post("/", customerHandler.CreateCustomer)
		r.Get("/", customerHandler.ListCustomers)
		r.Route("/{customerID}", func(r chi.Router) {
			r.Get("/", customerHandler.GetCustomer)
			r.Delete("/", customerHandler.DeleteCustomer)

			r.Post("/services", ledgerHandler.AddServiceLine)
			r.Get("/services", ledgerHandler.ListServiceLines)
			r.Delete("/services", ledgerHandler.RemoveServiceLines)
			r.Delete("/services/{lineID}", ledgerHandler.RemoveServiceLine)

			r.Post("/payments", ledgerHandler.AddPayment)
			r.Get("/payments", ledgerHandler.ListPayments)

			r.Get("/bill", billHandler.GetStatement)
			r.Get("/bill/pdf", billHandler.DownloadStatement)
		})
	})
}

func setupCatalogRoutes(router chi.Router, svc catalog.CatalogService, logger *slog.Logger) {
	catalogHandler := handler.NewCatalogHandler(svc, logger)

	router.Route("/services", func(r chi.Router) {
		r.Get("/", catalogHandler.ListServices)
		r.Post("/", catalogHandler.AddService)
		r.Put("/{entryID}", catalogHandler.UpdateService)
	})
}
