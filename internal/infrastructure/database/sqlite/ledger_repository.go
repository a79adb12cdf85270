package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"consultancy-ledger/internal/domain/ledger"
	"consultancy-ledger/internal/pkg/apperrors"

	"github.com/jmoiron/sqlx"
)

type LedgerRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

var _ ledger.LedgerRepository = (*LedgerRepository)(nil)

func NewLedgerRepository(db *sqlx.DB, logger *slog.Logger) *LedgerRepository {
	if db == nil {
		panic("sqlx.DB cannot be nil for LedgerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewLedgerRepository, using default stderr handler")
	}
	return &LedgerRepository{
		db:     db,
		logger: logger.With("component", "sqlite.LedgerRepository"),
	}
}

func (r *LedgerRepository) AddServiceLine(ctx context.Context, line *ledger.ServiceLine) error {
	if line == nil {
		return fmt.Errorf("%w: service line cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert service line",
		slog.Int64("customerID", line.CustomerID), slog.String("serviceName", line.Name))

	now := time.Now()
	query := `INSERT INTO services (customer_id, service_name, charge, created_at) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, line.CustomerID, line.Name, line.Charge, now)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert service line", slog.Any("error", err))
		return translateSQLiteError(err, r.logger)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to read inserted service line id: %w", apperrors.ErrDatabase, err)
	}
	line.LineID = id
	line.CreatedAt = now

	return nil
}

func (r *LedgerRepository) AddPayment(ctx context.Context, payment *ledger.Payment) error {
	if payment == nil {
		return fmt.Errorf("%w: payment cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert payment", slog.Int64("customerID", payment.CustomerID))

	now := time.Now()
	query := `INSERT INTO payments (customer_id, pay_date, amount, created_at) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, payment.CustomerID, payment.Date, payment.Amount, now)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert payment", slog.Any("error", err))
		return translateSQLiteError(err, r.logger)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to read inserted payment id: %w", apperrors.ErrDatabase, err)
	}
	payment.PaymentID = id
	payment.CreatedAt = now

	return nil
}

func (r *LedgerRepository) FindServiceLines(ctx context.Context, customerID int64) ([]ledger.ServiceLine, error) {
	query := `
        SELECT id, customer_id, service_name, charge, created_at
        FROM services
        WHERE customer_id = ?
        ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query service lines", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query service lines: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	lines := make([]ledger.ServiceLine, 0)
	for rows.Next() {
		var line ledger.ServiceLine
		if err := rows.Scan(&line.LineID, &line.CustomerID, &line.Name, &line.Charge, &line.CreatedAt); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan service line row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan service line row: %w", apperrors.ErrDatabase, err)
		}
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating service line rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating service line rows: %w", apperrors.ErrDatabase, err)
	}

	return lines, nil
}

func (r *LedgerRepository) FindPayments(ctx context.Context, customerID int64) ([]ledger.Payment, error) {
	query := `
        SELECT id, customer_id, pay_date, amount, created_at
        FROM payments
        WHERE customer_id = ?
        ORDER BY pay_date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query payments", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query payments: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	payments := make([]ledger.Payment, 0)
	for rows.Next() {
		var payment ledger.Payment
		if err := rows.Scan(&payment.PaymentID, &payment.CustomerID, &payment.Date, &payment.Amount, &payment.CreatedAt); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan payment row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan payment row: %w", apperrors.ErrDatabase, err)
		}
		payments = append(payments, payment)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating payment rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating payment rows: %w", apperrors.ErrDatabase, err)
	}

	return payments, nil
}

func (r *LedgerRepository) DeleteServiceLine(ctx context.Context, lineID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete service line", slog.Int64("lineID", lineID))

	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, lineID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete service line", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete service line: %w", apperrors.ErrDatabase, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read delete result: %w", apperrors.ErrDatabase, err)
	}
	if affected == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, service line likely not found")
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *LedgerRepository) DeleteServiceLines(ctx context.Context, customerID int64, lineIDs []int64) (int64, error) {
	r.logger.InfoContext(ctx, "Attempting to delete service lines",
		slog.Int64("customerID", customerID), slog.Int("count", len(lineIDs)))

	if len(lineIDs) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`DELETE FROM services WHERE customer_id = ? AND id IN (?)`, customerID, lineIDs)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to build bulk delete query: %w", apperrors.ErrDatabase, err)
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute bulk delete of service lines", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to delete service lines: %w", apperrors.ErrDatabase, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read delete result: %w", apperrors.ErrDatabase, err)
	}
	return affected, nil
}
