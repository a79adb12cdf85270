package dto

import (
	"time"

	"consultancy-ledger/internal/domain/billing"
)

// StatementResponse is the printable-bill payload: profile, itemized tables,
// and the three derived totals.
type StatementResponse struct {
	Customer      CustomerResponse      `json:"customer"`
	Services      []ServiceLineResponse `json:"services"`
	Payments      []PaymentResponse     `json:"payments"`
	TotalCharges  string                `json:"totalCharges"`
	TotalReceived string                `json:"totalReceived"`
	Balance       string                `json:"balance"`
	Settled       bool                  `json:"settled"`
	GeneratedAt   time.Time             `json:"generatedAt"`
}

func NewStatementResponse(stmt *billing.Statement) StatementResponse {
	if stmt == nil {
		return StatementResponse{}
	}

	services := make([]ServiceLineResponse, len(stmt.Services))
	for i := range stmt.Services {
		services[i] = NewServiceLineResponse(&stmt.Services[i])
	}
	payments := make([]PaymentResponse, len(stmt.Payments))
	for i := range stmt.Payments {
		payments[i] = NewPaymentResponse(&stmt.Payments[i])
	}

	return StatementResponse{
		Customer:      NewCustomerResponse(stmt.Customer),
		Services:      services,
		Payments:      payments,
		TotalCharges:  stmt.Totals.TotalCharges.StringFixed(2),
		TotalReceived: stmt.Totals.TotalReceived.StringFixed(2),
		Balance:       stmt.Totals.Balance.StringFixed(2),
		Settled:       stmt.Totals.Settled(),
		GeneratedAt:   stmt.GeneratedAt,
	}
}
