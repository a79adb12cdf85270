package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"consultancy-ledger/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type AddCatalogEntryRequest struct {
	ServiceName   string `json:"serviceName"`
	DefaultCharge string `json:"defaultCharge,omitempty"`
}

func (r *AddCatalogEntryRequest) Validate() error {
	if strings.TrimSpace(r.ServiceName) == "" {
		return fmt.Errorf("serviceName cannot be empty")
	}
	return nil
}

func (r *AddCatalogEntryRequest) ParseDefaultCharge() (decimal.Decimal, error) {
	if strings.TrimSpace(r.DefaultCharge) == "" {
		return decimal.Zero, nil
	}
	charge, err := decimal.NewFromString(strings.TrimSpace(r.DefaultCharge))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numeric format for defaultCharge")
	}
	return charge, nil
}

type UpdateCatalogEntryRequest struct {
	DefaultCharge string `json:"defaultCharge"`
	Active        bool   `json:"active"`
}

func (r *UpdateCatalogEntryRequest) ParseDefaultCharge() (decimal.Decimal, error) {
	charge, err := decimal.NewFromString(strings.TrimSpace(r.DefaultCharge))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numeric format for defaultCharge")
	}
	return charge, nil
}

type CatalogEntryResponse struct {
	EntryID       string    `json:"entryId"`
	ServiceName   string    `json:"serviceName"`
	DefaultCharge string    `json:"defaultCharge"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewCatalogEntryResponse(entry *catalog.Entry) CatalogEntryResponse {
	if entry == nil {
		return CatalogEntryResponse{}
	}
	return CatalogEntryResponse{
		EntryID:       strconv.FormatInt(entry.EntryID, 10),
		ServiceName:   entry.ServiceName,
		DefaultCharge: entry.DefaultCharge.StringFixed(2),
		Active:        entry.Active,
		CreatedAt:     entry.CreatedAt,
	}
}
