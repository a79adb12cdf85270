// Package sqlite is the local single-user storage backend. It mirrors the
// postgres repositories behind the same domain interfaces, so the service can
// run from one file on disk when no database URL is configured.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"consultancy-ledger/internal/domain/catalog"
	"consultancy-ledger/internal/pkg/apperrors"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		name          TEXT NOT NULL,
		mobile        TEXT NOT NULL,
		village       TEXT NOT NULL DEFAULT '',
		bank_name     TEXT NOT NULL DEFAULT '',
		loan_amount   TEXT NOT NULL DEFAULT '0',
		customer_date DATE NOT NULL,
		created_at    TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_name ON customers(name)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_mobile ON customers(mobile)`,
	`CREATE TABLE IF NOT EXISTS services (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id  INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		service_name TEXT NOT NULL,
		charge       TEXT NOT NULL DEFAULT '0',
		created_at   TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_services_customer ON services(customer_id)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		pay_date    DATE NOT NULL,
		amount      TEXT NOT NULL DEFAULT '0',
		created_at  TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_customer ON payments(customer_id)`,
	`CREATE TABLE IF NOT EXISTS service_catalog (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		service_name   TEXT NOT NULL UNIQUE,
		default_charge TEXT NOT NULL DEFAULT '0',
		is_active      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_service_catalog_active ON service_catalog(is_active)`,
}

// Open connects to the SQLite file at path with foreign keys enforced.
// The in-memory path used by tests is limited to a single connection so
// every statement sees the same database.
func Open(path string, logger *slog.Logger) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)

	logger.Info("Opening SQLite database...", "path", path)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open sqlite database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return db, nil
}

// Migrate creates the ledger tables if absent and seeds the service catalog.
func Migrate(ctx context.Context, db *sqlx.DB, logger *slog.Logger) error {
	logger.Info("Applying SQLite schema...")
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Error("Failed to apply schema statement", "error", err)
			return fmt.Errorf("%w: failed to apply schema: %w", apperrors.ErrDatabase, err)
		}
	}

	seedSQL := `INSERT OR IGNORE INTO service_catalog (service_name, default_charge, is_active, created_at)
		VALUES (?, '0', TRUE, CURRENT_TIMESTAMP)`
	for _, name := range catalog.DefaultServiceNames {
		if _, err := db.ExecContext(ctx, seedSQL, name); err != nil {
			logger.Error("Failed to seed catalog entry", "service_name", name, "error", err)
			return fmt.Errorf("%w: failed to seed service catalog: %w", apperrors.ErrDatabase, err)
		}
	}

	logger.Info("SQLite schema is up to date.")
	return nil
}

func translateSQLiteError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique:
			contextLogger.Warn("SQLite unique constraint violation", "error", sqliteErr.Error())
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, sqliteErr.Error())
		case sqlite3.ErrConstraintForeignKey:
			contextLogger.Warn("SQLite foreign key violation", "error", sqliteErr.Error())
			return fmt.Errorf("%w: referenced row does not exist", apperrors.ErrNotFound)
		}
	}

	contextLogger.Error("Generic sqlite error", "error", err)
	return fmt.Errorf("%w: %w", apperrors.ErrDatabase, err)
}
