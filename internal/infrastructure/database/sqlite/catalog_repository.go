package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"consultancy-ledger/internal/domain/catalog"
	"consultancy-ledger/internal/pkg/apperrors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type CatalogRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

var _ catalog.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db *sqlx.DB, logger *slog.Logger) *CatalogRepository {
	if db == nil {
		panic("sqlx.DB cannot be nil for CatalogRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCatalogRepository, using default stderr handler")
	}
	return &CatalogRepository{
		db:     db,
		logger: logger.With("component", "sqlite.CatalogRepository"),
	}
}

func (r *CatalogRepository) Insert(ctx context.Context, entry *catalog.Entry) error {
	if entry == nil {
		return fmt.Errorf("%w: catalog entry cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert catalog entry", slog.String("serviceName", entry.ServiceName))

	now := time.Now()
	query := `INSERT INTO service_catalog (service_name, default_charge, is_active, created_at) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, entry.ServiceName, entry.DefaultCharge, entry.Active, now)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert catalog entry", slog.Any("error", err))
		return translateSQLiteError(err, r.logger)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to read inserted catalog entry id: %w", apperrors.ErrDatabase, err)
	}
	entry.EntryID = id
	entry.CreatedAt = now

	return nil
}

func (r *CatalogRepository) Update(ctx context.Context, entryID int64, defaultCharge decimal.Decimal, active bool) error {
	r.logger.InfoContext(ctx, "Attempting to update catalog entry", slog.Int64("entryID", entryID))

	res, err := r.db.ExecContext(ctx,
		`UPDATE service_catalog SET default_charge = ?, is_active = ? WHERE id = ?`,
		defaultCharge, active, entryID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute update catalog entry", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update catalog entry: %w", apperrors.ErrDatabase, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read update result: %w", apperrors.ErrDatabase, err)
	}
	if affected == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, catalog entry likely not found")
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *CatalogRepository) FindActive(ctx context.Context) ([]catalog.Entry, error) {
	query := `
        SELECT id, service_name, default_charge, is_active, created_at
        FROM service_catalog
        WHERE is_active = TRUE
        ORDER BY service_name ASC`

	return r.queryEntries(ctx, query)
}

func (r *CatalogRepository) FindAll(ctx context.Context) ([]catalog.Entry, error) {
	query := `
        SELECT id, service_name, default_charge, is_active, created_at
        FROM service_catalog
        ORDER BY service_name ASC`

	return r.queryEntries(ctx, query)
}

func (r *CatalogRepository) queryEntries(ctx context.Context, query string) ([]catalog.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query catalog entries", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query catalog entries: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	entries := make([]catalog.Entry, 0)
	for rows.Next() {
		var entry catalog.Entry
		if err := rows.Scan(&entry.EntryID, &entry.ServiceName, &entry.DefaultCharge, &entry.Active, &entry.CreatedAt); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan catalog entry row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan catalog entry row: %w", apperrors.ErrDatabase, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating catalog entry rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating catalog entry rows: %w", apperrors.ErrDatabase, err)
	}

	return entries, nil
}
