package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"consultancy-ledger/internal/domain/customer"
	"consultancy-ledger/internal/pkg/apperrors"

	"github.com/jmoiron/sqlx"
)

type CustomerRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *sqlx.DB, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("sqlx.DB cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "sqlite.CustomerRepository"),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.String("name", cust.Name))

	now := time.Now()
	query := `
        INSERT INTO customers (name, mobile, village, bank_name, loan_amount, customer_date, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		cust.Name,
		cust.Mobile,
		cust.Village,
		cust.BankName,
		cust.LoanAmount,
		cust.CustomerDate,
		now,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return translateSQLiteError(err, r.logger)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: failed to read inserted customer id: %w", apperrors.ErrDatabase, err)
	}
	cust.CustomerID = id
	cust.CreatedAt = now

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.CustomerID))
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	query := `
        SELECT id, name, mobile, village, bank_name, loan_amount, customer_date, created_at
        FROM customers
        WHERE id = ?`

	var cust customer.Customer
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(
		&cust.CustomerID,
		&cust.Name,
		&cust.Mobile,
		&cust.Village,
		&cust.BankName,
		&cust.LoanAmount,
		&cust.CustomerDate,
		&cust.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found", slog.Int64("customerID", customerID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrDatabase, err)
	}

	return &cust, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	query := `
        SELECT id, name, mobile, village, bank_name, loan_amount, customer_date, created_at
        FROM customers
        ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var cust customer.Customer
		err := rows.Scan(
			&cust.CustomerID,
			&cust.Name,
			&cust.Mobile,
			&cust.Village,
			&cust.BankName,
			&cust.LoanAmount,
			&cust.CustomerDate,
			&cust.CreatedAt,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, err)
		}
		customers = append(customers, &cust)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}

	return customers, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete customer", slog.Int64("customerID", customerID))

	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete customer: %w", apperrors.ErrDatabase, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read delete result: %w", apperrors.ErrDatabase, err)
	}
	if affected == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *CustomerRepository) Exists(ctx context.Context, customerID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = ?)`, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to check customer existence", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check customer existence: %w", apperrors.ErrDatabase, err)
	}
	return exists, nil
}
