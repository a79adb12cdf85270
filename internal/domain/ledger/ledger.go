package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceLine is one billable item rendered to a customer. The service name
// is free text; catalog entries only assist input and are not referenced.
type ServiceLine struct {
	LineID     int64           `json:"lineId"`
	CustomerID int64           `json:"customerId"`
	Name       string          `json:"serviceName"`
	Charge     decimal.Decimal `json:"charge"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Payment is one installment received from a customer. Payments are recorded
// against the customer as a whole, never against individual service lines.
type Payment struct {
	PaymentID  int64           `json:"paymentId"`
	CustomerID int64           `json:"customerId"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"createdAt"`
}
