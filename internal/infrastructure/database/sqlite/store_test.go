package sqlite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"consultancy-ledger/internal/domain/billing"
	"consultancy-ledger/internal/domain/catalog"
	"consultancy-ledger/internal/domain/customer"
	"consultancy-ledger/internal/domain/ledger"
	"consultancy-ledger/internal/pkg/apperrors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(context.Background(), db, logger))
	return db
}

func newTestCustomer(t *testing.T, db *sqlx.DB, name string) *customer.Customer {
	t.Helper()
	repo := NewCustomerRepository(db, logger)
	cust := &customer.Customer{
		Name:         name,
		Mobile:       "9876543210",
		LoanAmount:   decimal.Zero,
		CustomerDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(context.Background(), cust))
	return cust
}

func TestMigrateSeedsDefaultCatalog(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db, logger)

	entries, err := repo.FindActive(ctx)

	assert.NoError(t, err)
	assert.Len(t, entries, len(catalog.DefaultServiceNames))
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// A second migration must not duplicate catalog rows.
	require.NoError(t, Migrate(ctx, db, logger))

	repo := NewCatalogRepository(db, logger)
	entries, err := repo.FindAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, entries, len(catalog.DefaultServiceNames))
}

func TestCustomerRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewCustomerRepository(db, logger)

	cust := newTestCustomer(t, db, "Ravi Kumar")
	assert.NotZero(t, cust.CustomerID)

	found, err := repo.FindByID(ctx, cust.CustomerID)
	assert.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", found.Name)
	assert.True(t, found.LoanAmount.Equal(decimal.Zero))

	exists, err := repo.Exists(ctx, cust.CustomerID)
	assert.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindAllPreservesRegistrationOrder(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewCustomerRepository(db, logger)

	first := newTestCustomer(t, db, "First")
	second := newTestCustomer(t, db, "Second")

	customers, err := repo.FindAll(ctx)

	assert.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, first.CustomerID, customers[0].CustomerID)
	assert.Equal(t, second.CustomerID, customers[1].CustomerID)
}

func TestServiceLineReferentialIntegrity(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(db, logger)

	line := &ledger.ServiceLine{
		CustomerID: 9999,
		Name:       "Xerox",
		Charge:     decimal.RequireFromString("20.00"),
	}

	err := repo.AddServiceLine(ctx, line)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteCustomerCascadesToLedger(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	customers := NewCustomerRepository(db, logger)
	entries := NewLedgerRepository(db, logger)

	cust := newTestCustomer(t, db, "Ravi Kumar")
	require.NoError(t, entries.AddServiceLine(ctx, &ledger.ServiceLine{
		CustomerID: cust.CustomerID, Name: "Agreement", Charge: decimal.RequireFromString("1500.00"),
	}))
	require.NoError(t, entries.AddPayment(ctx, &ledger.Payment{
		CustomerID: cust.CustomerID, Date: time.Now(), Amount: decimal.RequireFromString("500.00"),
	}))

	require.NoError(t, customers.Delete(ctx, cust.CustomerID))

	lines, err := entries.FindServiceLines(ctx, cust.CustomerID)
	assert.NoError(t, err)
	assert.Empty(t, lines)

	payments, err := entries.FindPayments(ctx, cust.CustomerID)
	assert.NoError(t, err)
	assert.Empty(t, payments)
}

func TestPaymentsOrderedByDate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	entries := NewLedgerRepository(db, logger)
	cust := newTestCustomer(t, db, "Asha")

	later := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, entries.AddPayment(ctx, &ledger.Payment{
		CustomerID: cust.CustomerID, Date: later, Amount: decimal.RequireFromString("200.00"),
	}))
	require.NoError(t, entries.AddPayment(ctx, &ledger.Payment{
		CustomerID: cust.CustomerID, Date: earlier, Amount: decimal.RequireFromString("100.00"),
	}))

	payments, err := entries.FindPayments(ctx, cust.CustomerID)

	assert.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "100.00", payments[0].Amount.StringFixed(2))
	assert.Equal(t, "200.00", payments[1].Amount.StringFixed(2))
}

func TestDeleteServiceLinesSkipsForeignIDs(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	entries := NewLedgerRepository(db, logger)

	owner := newTestCustomer(t, db, "Owner")
	other := newTestCustomer(t, db, "Other")

	mine := &ledger.ServiceLine{CustomerID: owner.CustomerID, Name: "Typing", Charge: decimal.RequireFromString("50.00")}
	theirs := &ledger.ServiceLine{CustomerID: other.CustomerID, Name: "Typing", Charge: decimal.RequireFromString("50.00")}
	require.NoError(t, entries.AddServiceLine(ctx, mine))
	require.NoError(t, entries.AddServiceLine(ctx, theirs))

	removed, err := entries.DeleteServiceLines(ctx, owner.CustomerID, []int64{mine.LineID, theirs.LineID})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// The other customer's line survives.
	lines, err := entries.FindServiceLines(ctx, other.CustomerID)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCatalogDuplicateNameRejected(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db, logger)

	err := repo.Insert(ctx, &catalog.Entry{ServiceName: "Xerox", Active: true})

	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestCatalogUpdateDeactivatesEntry(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db, logger)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	target := all[0]
	charge := decimal.RequireFromString("99.00")
	require.NoError(t, repo.Update(ctx, target.EntryID, charge, false))

	active, err := repo.FindActive(ctx)
	assert.NoError(t, err)
	assert.Len(t, active, len(all)-1)
}

// Full billing scenario exercised end to end against the embedded store.
func TestLedgerLifecycleProducesExactTotals(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	entries := NewLedgerRepository(db, logger)
	cust := newTestCustomer(t, db, "Ravi Kumar")

	require.NoError(t, entries.AddServiceLine(ctx, &ledger.ServiceLine{
		CustomerID: cust.CustomerID, Name: "Valuation Report", Charge: decimal.RequireFromString("500.00"),
	}))
	require.NoError(t, entries.AddServiceLine(ctx, &ledger.ServiceLine{
		CustomerID: cust.CustomerID, Name: "Agreement", Charge: decimal.RequireFromString("1250.50"),
	}))
	require.NoError(t, entries.AddPayment(ctx, &ledger.Payment{
		CustomerID: cust.CustomerID, Date: time.Now(), Amount: decimal.RequireFromString("1000.00"),
	}))

	lines, err := entries.FindServiceLines(ctx, cust.CustomerID)
	require.NoError(t, err)
	payments, err := entries.FindPayments(ctx, cust.CustomerID)
	require.NoError(t, err)

	totals := billing.ComputeTotals(lines, payments)

	assert.Equal(t, "1750.50", totals.TotalCharges.StringFixed(2))
	assert.Equal(t, "1000.00", totals.TotalReceived.StringFixed(2))
	assert.Equal(t, "750.50", totals.Balance.StringFixed(2))
	assert.False(t, totals.Settled())
}
