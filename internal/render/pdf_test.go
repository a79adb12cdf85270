package render_test

import (
	"bytes"
	"testing"
	"time"

	"consultancy-ledger/internal/domain/billing"
	"consultancy-ledger/internal/domain/customer"
	"consultancy-ledger/internal/domain/ledger"
	"consultancy-ledger/internal/render"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStatement() *billing.Statement {
	lines := []ledger.ServiceLine{
		{LineID: 1, CustomerID: 1, Name: "Patta", Charge: decimal.RequireFromString("500.00")},
		{LineID: 2, CustomerID: 1, Name: "Na Patra", Charge: decimal.RequireFromString("1250.50")},
	}
	payments := []ledger.Payment{
		{PaymentID: 1, CustomerID: 1, Date: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("1000.00")},
	}
	return &billing.Statement{
		Customer: &customer.Customer{
			CustomerID:   1,
			Name:         "Ravi Kumar",
			Mobile:       "9876543210",
			Village:      "Rampur",
			BankName:     "SBI",
			LoanAmount:   decimal.RequireFromString("50000.00"),
			CustomerDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		Services:    lines,
		Payments:    payments,
		Totals:      billing.ComputeTotals(lines, payments),
		GeneratedAt: time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestStatementPDF(t *testing.T) {
	t.Run("renders a statement as a PDF document", func(t *testing.T) {
		data, err := render.StatementPDF(sampleStatement())

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should start with the PDF magic bytes")
		assert.Greater(t, len(data), 1000, "a rendered statement should not be empty")
	})

	t.Run("renders an empty ledger", func(t *testing.T) {
		stmt := sampleStatement()
		stmt.Services = nil
		stmt.Payments = nil
		stmt.Totals = billing.ComputeTotals(nil, nil)

		data, err := render.StatementPDF(stmt)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("rejects a nil statement", func(t *testing.T) {
		_, err := render.StatementPDF(nil)
		assert.Error(t, err)
	})

	t.Run("rejects a statement without a customer", func(t *testing.T) {
		stmt := sampleStatement()
		stmt.Customer = nil

		_, err := render.StatementPDF(stmt)
		assert.Error(t, err)
	})
}
