package ledger

import (
	"context"
)

type LedgerRepository interface {
	// AddServiceLine inserts one line. Implementations return
	// apperrors.ErrNotFound when the referenced customer does not exist,
	// without leaving an orphaned row behind.
	AddServiceLine(ctx context.Context, line *ServiceLine) error

	AddPayment(ctx context.Context, payment *Payment) error

	// FindServiceLines returns the customer's lines ordered by insertion.
	FindServiceLines(ctx context.Context, customerID int64) ([]ServiceLine, error)

	// FindPayments returns the customer's payments ordered by payment date.
	FindPayments(ctx context.Context, customerID int64) ([]Payment, error)

	DeleteServiceLine(ctx context.Context, lineID int64) error

	// DeleteServiceLines removes the given lines, skipping ids that do not
	// belong to the customer. Returns the number of rows removed.
	DeleteServiceLines(ctx context.Context, customerID int64, lineIDs []int64) (int64, error)
}

// CustomerDirectory is the slice of the customer manager the ledger managers
// need: referential-integrity checks before recording against a customer.
type CustomerDirectory interface {
	EnsureExists(ctx context.Context, customerID int64) error
}
