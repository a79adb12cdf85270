package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"consultancy-ledger/internal/domain/customer"
	"consultancy-ledger/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const pgxmockExpectationsNotMetMsg = "pgxmock expectations were not met"

var customerTest = &customer.Customer{
	CustomerID:   1,
	Name:         "Ravi Kumar",
	Mobile:       "9876543210",
	Village:      "Rampur",
	BankName:     "SBI",
	LoanAmount:   decimal.RequireFromString("50000.00"),
	CustomerDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
}

func setupCustomerRepo(t *testing.T) (context.Context, *CustomerRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewCustomerRepository(mockPool, logger)

	return ctx, repo, mockPool
}

func TestSaveCustomerWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	query := `
        INSERT INTO customers (name, mobile, village, bank_name, loan_amount, customer_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id, created_at`

	mockPool.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(
		customerTest.Name,
		customerTest.Mobile,
		customerTest.Village,
		customerTest.BankName,
		customerTest.LoanAmount,
		customerTest.CustomerDate,
	).WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
		AddRow(customerTest.CustomerID, time.Now()))

	saved := *customerTest
	saved.CustomerID = 0
	err := repo.Save(ctx, &saved)

	assert.NoError(t, err)
	assert.Equal(t, customerTest.CustomerID, saved.CustomerID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCustomerByIDWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	query := `
        SELECT id, name, mobile, village, bank_name, loan_amount, customer_date, created_at
        FROM customers
        WHERE id = $1`

	mockPool.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(customerTest.CustomerID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "mobile", "village", "bank_name", "loan_amount", "customer_date", "created_at"}).
			AddRow(customerTest.CustomerID, customerTest.Name, customerTest.Mobile, customerTest.Village,
				customerTest.BankName, customerTest.LoanAmount, customerTest.CustomerDate, time.Now()))

	found, err := repo.FindByID(ctx, customerTest.CustomerID)

	assert.NoError(t, err)
	assert.NotNil(t, found)
	if found != nil {
		assert.Equal(t, customerTest.Name, found.Name)
		assert.True(t, found.LoanAmount.Equal(customerTest.LoanAmount))
	}
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCustomerByIDWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, mobile, village, bank_name, loan_amount, customer_date, created_at`)).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(ctx, 99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindAllCustomersWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, mobile, village, bank_name, loan_amount, customer_date, created_at`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "mobile", "village", "bank_name", "loan_amount", "customer_date", "created_at"}).
			AddRow(int64(1), "Ravi Kumar", "9876543210", "Rampur", "SBI", decimal.NewFromInt(0), time.Now(), time.Now()).
			AddRow(int64(2), "Asha", "9000000001", "", "", decimal.NewFromInt(0), time.Now(), time.Now()))

	customers, err := repo.FindAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.Equal(t, int64(1), customers[0].CustomerID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteCustomerWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec(regexp.QuoteMeta(`DELETE FROM customers WHERE id = $1`)).
		WithArgs(customerTest.CustomerID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(ctx, customerTest.CustomerID)

	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteCustomerWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec(regexp.QuoteMeta(`DELETE FROM customers WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(ctx, 99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestCustomerExists(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`)).
		WithArgs(customerTest.CustomerID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(ctx, customerTest.CustomerID)

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestTranslateDBErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	err := translateDBError(pgErr, logger)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestTranslateDBErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"}
	err := translateDBError(pgErr, logger)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTranslateDBErrorPassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("connection refused")
	err := translateDBError(plain, logger)
	assert.ErrorIs(t, err, apperrors.ErrDatabase)
}
