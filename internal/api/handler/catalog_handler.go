package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"consultancy-ledger/internal/api/handler/dto"
	"consultancy-ledger/internal/domain/catalog"
	"consultancy-ledger/internal/pkg/apperrors"
)

type CatalogHandler struct {
	service catalog.CatalogService
	logger  *slog.Logger
}

func NewCatalogHandler(s catalog.CatalogService, l *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: s,
		logger:  l.With("component", "CatalogHandler"),
	}
}

// ListServices returns catalog entries. Inactive entries are included only
// when the request carries ?include=inactive.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	var (
		entries []catalog.Entry
		err     error
	)
	if r.URL.Query().Get("include") == "inactive" {
		entries, err = h.service.ListAll(r.Context())
	} else {
		entries, err = h.service.ListActive(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]dto.CatalogEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, dto.NewCatalogEntryResponse(&entries[i]))
	}
	respondJSON(w, http.StatusOK, resp)
}

// AddService registers a new offering in the service catalog.
func (h *CatalogHandler) AddService(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCatalogEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	charge, err := req.ParseDefaultCharge()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	entry, err := h.service.AddEntry(r.Context(), req.ServiceName, charge)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.NewCatalogEntryResponse(entry))
}

// UpdateService changes an entry's default charge or active flag.
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r, "entryID")
	if err != nil {
		respondError(w, err)
		return
	}

	var req dto.UpdateCatalogEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	charge, err := req.ParseDefaultCharge()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.service.UpdateEntry(r.Context(), entryID, charge, req.Active); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Service updated"})
}
