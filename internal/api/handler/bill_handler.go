package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"consultancy-ledger/internal/api/handler/dto"
	"consultancy-ledger/internal/domain/billing"
	"consultancy-ledger/internal/render"
)

type BillHandler struct {
	service billing.BillingService
	logger  *slog.Logger
}

func NewBillHandler(s billing.BillingService, l *slog.Logger) *BillHandler {
	return &BillHandler{
		service: s,
		logger:  l.With("component", "BillHandler"),
	}
}

// GetStatement returns the assembled bill for a customer as JSON.
func (h *BillHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	stmt, err := h.service.GetStatement(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewStatementResponse(stmt))
}

// DownloadStatement renders the bill as a PDF attachment.
func (h *BillHandler) DownloadStatement(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	stmt, err := h.service.GetStatement(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}

	document, err := render.StatementPDF(stmt)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to render statement PDF",
			slog.Int64("customerID", customerID), slog.Any("error", err))
		respondError(w, err)
		return
	}

	filename := fmt.Sprintf("statement-%d.pdf", customerID)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}
