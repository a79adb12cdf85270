package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"consultancy-ledger/internal/api/handler/dto"
	"consultancy-ledger/internal/domain/ledger"
	"consultancy-ledger/internal/pkg/apperrors"
)

// LedgerHandler serves the per-customer service-line and payment endpoints.
type LedgerHandler struct {
	entries  ledger.ServiceEntryService
	payments ledger.PaymentService
	logger   *slog.Logger
}

func NewLedgerHandler(entries ledger.ServiceEntryService, payments ledger.PaymentService, l *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		entries:  entries,
		payments: payments,
		logger:   l.With("component", "LedgerHandler"),
	}
}

// AddServiceLine records a service rendered to a customer.
func (h *LedgerHandler) AddServiceLine(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.AddServiceLineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	charge, err := req.ParseCharge()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	line, err := h.entries.AddServiceLine(r.Context(), customerID, req.ServiceName, charge)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewServiceLineResponse(line))
}

// ListServiceLines returns a customer's service lines in the order they were
// recorded.
func (h *LedgerHandler) ListServiceLines(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	lines, err := h.entries.ListServiceLines(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.ServiceLineResponse, 0, len(lines))
	for i := range lines {
		resp = append(resp, dto.NewServiceLineResponse(&lines[i]))
	}
	respondJSON(w, http.StatusOK, resp)
}

// RemoveServiceLine deletes a single service line by its ID.
func (h *LedgerHandler) RemoveServiceLine(w http.ResponseWriter, r *http.Request) {
	lineID, err := pathID(r, "lineID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.entries.RemoveServiceLine(r.Context(), lineID); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// RemoveServiceLines deletes a batch of a customer's service lines in one
// call, mirroring the multi-select delete on the entry form.
func (h *LedgerHandler) RemoveServiceLines(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.RemoveServiceLinesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.entries.RemoveServiceLines(r.Context(), customerID, req.LineIDs); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// AddPayment records money received from a customer. A missing date defaults
// to today.
func (h *LedgerHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.AddPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	amount, err := req.ParseAmount()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	date, err := req.ParseDate(time.Now().UTC())
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	payment, err := h.payments.AddPayment(r.Context(), customerID, date, amount)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewPaymentResponse(payment))
}

// ListPayments returns a customer's payment history ordered by payment date.
func (h *LedgerHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	payments, err := h.payments.ListPayments(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, dto.NewPaymentResponse(&payments[i]))
	}
	respondJSON(w, http.StatusOK, resp)
}
