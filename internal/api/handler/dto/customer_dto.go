package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"consultancy-ledger/internal/domain/customer"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CreateCustomerRequest carries the registration form. Monetary fields are
// strings so amounts survive JSON without float rounding.
type CreateCustomerRequest struct {
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	Village      string `json:"village,omitempty"`
	BankName     string `json:"bankName,omitempty"`
	LoanAmount   string `json:"loanAmount,omitempty"`
	CustomerDate string `json:"customerDate,omitempty"`
}

func (r *CreateCustomerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(r.Mobile) == "" {
		return fmt.Errorf("mobile cannot be empty")
	}
	return nil
}

// ToParams parses the string fields into domain values. An empty loan amount
// means zero; an empty customer date defers to the service default (today).
func (r *CreateCustomerRequest) ToParams() (customer.CreateCustomerParams, error) {
	params := customer.CreateCustomerParams{
		Name:       r.Name,
		Mobile:     r.Mobile,
		Village:    r.Village,
		BankName:   r.BankName,
		LoanAmount: decimal.Zero,
	}

	if strings.TrimSpace(r.LoanAmount) != "" {
		amount, err := decimal.NewFromString(strings.TrimSpace(r.LoanAmount))
		if err != nil {
			return customer.CreateCustomerParams{}, fmt.Errorf("invalid numeric format for loanAmount")
		}
		params.LoanAmount = amount
	}

	if strings.TrimSpace(r.CustomerDate) != "" {
		date, err := time.Parse(DateLayout, strings.TrimSpace(r.CustomerDate))
		if err != nil {
			return customer.CreateCustomerParams{}, fmt.Errorf("invalid date format for customerDate, want YYYY-MM-DD")
		}
		params.CustomerDate = date
	}

	return params, nil
}

type CustomerResponse struct {
	CustomerID   string    `json:"customerId"`
	Name         string    `json:"name"`
	Mobile       string    `json:"mobile"`
	Village      string    `json:"village"`
	BankName     string    `json:"bankName"`
	LoanAmount   string    `json:"loanAmount"`
	CustomerDate string    `json:"customerDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}

	return CustomerResponse{
		CustomerID:   strconv.FormatInt(cust.CustomerID, 10),
		Name:         cust.Name,
		Mobile:       cust.Mobile,
		Village:      cust.Village,
		BankName:     cust.BankName,
		LoanAmount:   cust.LoanAmount.StringFixed(2),
		CustomerDate: cust.CustomerDate.Format(DateLayout),
		CreatedAt:    cust.CreatedAt,
	}
}
