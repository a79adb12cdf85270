package billing

import (
	"consultancy-ledger/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

// Totals are the derived figures of one customer's ledger. Balance is
// charges minus received and is deliberately not clamped: a negative balance
// means the customer has overpaid, and interpreting that is up to the caller.
type Totals struct {
	TotalCharges  decimal.Decimal `json:"totalCharges"`
	TotalReceived decimal.Decimal `json:"totalReceived"`
	Balance       decimal.Decimal `json:"balance"`
}

// ComputeTotals sums service line charges and payment amounts with exact
// decimal arithmetic. It has no side effects.
func ComputeTotals(lines []ledger.ServiceLine, payments []ledger.Payment) Totals {
	totalCharges := decimal.Zero
	for _, line := range lines {
		totalCharges = totalCharges.Add(line.Charge)
	}

	totalReceived := decimal.Zero
	for _, payment := range payments {
		totalReceived = totalReceived.Add(payment.Amount)
	}

	return Totals{
		TotalCharges:  totalCharges,
		TotalReceived: totalReceived,
		Balance:       totalCharges.Sub(totalReceived),
	}
}

// Settled reports whether the ledger is fully paid or overpaid.
func (t Totals) Settled() bool {
	return !t.Balance.IsPositive()
}
