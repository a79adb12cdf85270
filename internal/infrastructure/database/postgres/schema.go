package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"consultancy-ledger/internal/domain/catalog"
	"consultancy-ledger/internal/pkg/apperrors"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		mobile        TEXT NOT NULL,
		village       TEXT NOT NULL DEFAULT '',
		bank_name     TEXT NOT NULL DEFAULT '',
		loan_amount   NUMERIC(14,2) NOT NULL DEFAULT 0,
		customer_date DATE NOT NULL DEFAULT CURRENT_DATE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_name ON customers(name)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_mobile ON customers(mobile)`,
	`CREATE TABLE IF NOT EXISTS services (
		id           BIGSERIAL PRIMARY KEY,
		customer_id  BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		service_name TEXT NOT NULL,
		charge       NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_services_customer ON services(customer_id)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id          BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		pay_date    DATE NOT NULL,
		amount      NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_customer ON payments(customer_id)`,
	`CREATE TABLE IF NOT EXISTS service_catalog (
		id             BIGSERIAL PRIMARY KEY,
		service_name   TEXT NOT NULL UNIQUE,
		default_charge NUMERIC(12,2) NOT NULL DEFAULT 0,
		is_active      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_service_catalog_active ON service_catalog(is_active)`,
}

// Migrate creates the ledger tables and indexes if they do not exist yet and
// seeds the service catalog with the standard consultancy offerings.
func Migrate(ctx context.Context, db DBPool, logger *slog.Logger) error {
	logger.Info("Applying database schema...")
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			logger.Error("Failed to apply schema statement", "error", err)
			return fmt.Errorf("%w: failed to apply schema: %w", apperrors.ErrDatabase, err)
		}
	}

	seedSQL := `INSERT INTO service_catalog (service_name, default_charge)
		VALUES ($1, 0)
		ON CONFLICT (service_name) DO NOTHING`
	for _, name := range catalog.DefaultServiceNames {
		if _, err := db.Exec(ctx, seedSQL, name); err != nil {
			logger.Error("Failed to seed catalog entry", "service_name", name, "error", err)
			return fmt.Errorf("%w: failed to seed service catalog: %w", apperrors.ErrDatabase, err)
		}
	}

	logger.Info("Database schema is up to date.")
	return nil
}
