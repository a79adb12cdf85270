package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"consultancy-ledger/internal/domain/ledger"
	"consultancy-ledger/internal/pkg/apperrors"
)

type LedgerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ ledger.LedgerRepository = (*LedgerRepository)(nil)

func NewLedgerRepository(db DBPool, logger *slog.Logger) *LedgerRepository {
	if db == nil {
		panic("DBPool cannot be nil for LedgerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewLedgerRepository, using default stderr handler")
	}
	return &LedgerRepository{
		db:     db,
		logger: logger.With("component", "LedgerRepository"),
	}
}

func (r *LedgerRepository) AddServiceLine(ctx context.Context, line *ledger.ServiceLine) error {
	if line == nil {
		return fmt.Errorf("%w: service line cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert service line",
		slog.Int64("customerID", line.CustomerID), slog.String("serviceName", line.Name))

	query := `
        INSERT INTO services (customer_id, service_name, charge, created_at)
        VALUES ($1, $2, $3, NOW())
        RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		line.CustomerID,
		line.Name,
		line.Charge,
	).Scan(
		&line.LineID,
		&line.CreatedAt,
	)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert service line", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Service line inserted successfully", slog.Int64("lineID", line.LineID))
	return nil
}

func (r *LedgerRepository) AddPayment(ctx context.Context, payment *ledger.Payment) error {
	if payment == nil {
		return fmt.Errorf("%w: payment cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert payment", slog.Int64("customerID", payment.CustomerID))

	query := `
        INSERT INTO payments (customer_id, pay_date, amount, created_at)
        VALUES ($1, $2, $3, NOW())
        RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		payment.CustomerID,
		payment.Date,
		payment.Amount,
	).Scan(
		&payment.PaymentID,
		&payment.CreatedAt,
	)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert payment", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Payment inserted successfully", slog.Int64("paymentID", payment.PaymentID))
	return nil
}

func (r *LedgerRepository) FindServiceLines(ctx context.Context, customerID int64) ([]ledger.ServiceLine, error) {
	query := `
        SELECT id, customer_id, service_name, charge, created_at
        FROM services
        WHERE customer_id = $1
        ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query service lines", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query service lines: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	lines := make([]ledger.ServiceLine, 0)
	for rows.Next() {
		var line ledger.ServiceLine
		err := rows.Scan(
			&line.LineID,
			&line.CustomerID,
			&line.Name,
			&line.Charge,
			&line.CreatedAt,
		)
		if err != nil {
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
        WHERE customer_id = $1
        ORDER BY pay_date ASC, id ASC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query payments", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query payments: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	payments := make([]ledger.Payment, 0)
	for rows.Next() {
		var payment ledger.Payment
		err := rows.Scan(
			&payment.PaymentID,
			&payment.CustomerID,
			&payment.Date,
			&payment.Amount,
			&payment.CreatedAt,
		)
		if err != nil {
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

	query := `DELETE FROM services WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, lineID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete service line", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete service line: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, service line likely not found")
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *LedgerRepository) DeleteServiceLines(ctx context.Context, customerID int64, lineIDs []int64) (int64, error) {
	r.logger.InfoContext(ctx, "Attempting to delete service lines",
		slog.Int64("customerID", customerID), slog.Int("count", len(lineIDs)))

	query := `DELETE FROM services WHERE customer_id = $1 AND id = ANY($2)`

	cmdTag, err := r.db.Exec(ctx, query, customerID, lineIDs)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute bulk delete of service lines", slog.Any("error", err))
		return 0, fmt.Errorf("%w: failed to delete service lines: %w", apperrors.ErrDatabase, err)
	}

	return cmdTag.RowsAffected(), nil
}
