package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID   int64           `json:"customerId"`
	Name         string          `json:"name"`
	Mobile       string          `json:"mobile"`
	Village      string          `json:"village"`
	BankName     string          `json:"bankName"`
	LoanAmount   decimal.Decimal `json:"loanAmount"`
	CustomerDate time.Time       `json:"customerDate"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func NewCustomer(name, mobile, village, bankName string, loanAmount decimal.Decimal, customerDate time.Time) *Customer {
	if customerDate.IsZero() {
		customerDate = time.Now().Truncate(24 * time.Hour)
	}
	return &Customer{
		Name:         name,
		Mobile:       mobile,
		Village:      village,
		BankName:     bankName,
		LoanAmount:   loanAmount,
		CustomerDate: customerDate,
	}
}
