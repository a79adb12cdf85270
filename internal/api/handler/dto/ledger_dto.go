package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"consultancy-ledger/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

type AddServiceLineRequest struct {
	ServiceName string `json:"serviceName"`
	Charge      string `json:"charge"`
}

func (r *AddServiceLineRequest) Validate() error {
	if strings.TrimSpace(r.ServiceName) == "" {
		return fmt.Errorf("serviceName cannot be empty")
	}
	if strings.TrimSpace(r.Charge) == "" {
		return fmt.Errorf("charge cannot be empty")
	}
	return nil
}

func (r *AddServiceLineRequest) ParseCharge() (decimal.Decimal, error) {
	charge, err := decimal.NewFromString(strings.TrimSpace(r.Charge))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numeric format for charge")
	}
	return charge, nil
}

type RemoveServiceLinesRequest struct {
	LineIDs []int64 `json:"lineIds"`
}

func (r *RemoveServiceLinesRequest) Validate() error {
	if len(r.LineIDs) == 0 {
		return fmt.Errorf("lineIds cannot be empty")
	}
	return nil
}

type ServiceLineResponse struct {
	LineID      string    `json:"lineId"`
	CustomerID  string    `json:"customerId"`
	ServiceName string    `json:"serviceName"`
	Charge      string    `json:"charge"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewServiceLineResponse(line *ledger.ServiceLine) ServiceLineResponse {
	if line == nil {
		return ServiceLineResponse{}
	}
	return ServiceLineResponse{
		LineID:      strconv.FormatInt(line.LineID, 10),
		CustomerID:  strconv.FormatInt(line.CustomerID, 10),
		ServiceName: line.Name,
		Charge:      line.Charge.StringFixed(2),
		CreatedAt:   line.CreatedAt,
	}
}

type AddPaymentRequest struct {
	// Date may be empty; the handler substitutes today's date, matching the
	// payment form's default.
	Date   string `json:"date,omitempty"`
	Amount string `json:"amount"`
}

func (r *AddPaymentRequest) Validate() error {
	if strings.TrimSpace(r.Amount) == "" {
		return fmt.Errorf("amount cannot be empty")
	}
	return nil
}

func (r *AddPaymentRequest) ParseAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numeric format for amount")
	}
	return amount, nil
}

func (r *AddPaymentRequest) ParseDate(now time.Time) (time.Time, error) {
	if strings.TrimSpace(r.Date) == "" {
		return now.Truncate(24 * time.Hour), nil
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(r.Date))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format for date, want YYYY-MM-DD")
	}
	return date, nil
}

type PaymentResponse struct {
	PaymentID  string    `json:"paymentId"`
	CustomerID string    `json:"customerId"`
	Date       string    `json:"date"`
	Amount     string    `json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewPaymentResponse(payment *ledger.Payment) PaymentResponse {
	if payment == nil {
		return PaymentResponse{}
	}
	return PaymentResponse{
		PaymentID:  strconv.FormatInt(payment.PaymentID, 10),
		CustomerID: strconv.FormatInt(payment.CustomerID, 10),
		Date:       payment.Date.Format(DateLayout),
		Amount:     payment.Amount.StringFixed(2),
		CreatedAt:  payment.CreatedAt,
	}
}
