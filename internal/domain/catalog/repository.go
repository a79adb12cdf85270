package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

type CatalogRepository interface {
	// Insert adds a new entry. Returns apperrors.ErrAlreadyExists when the
	// service name is already present.
	Insert(ctx context.Context, entry *Entry) error

	// Update changes the default charge and active flag of an entry.
	Update(ctx context.Context, entryID int64, defaultCharge decimal.Decimal, active bool) error

	// FindActive returns active entries ordered by service name.
	FindActive(ctx context.Context) ([]Entry, error)

	// FindAll returns every entry ordered by service name.
	FindAll(ctx context.Context) ([]Entry, error)
}
