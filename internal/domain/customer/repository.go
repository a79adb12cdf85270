package customer

import (
	"context"
)

type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	FindAll(ctx context.Context) ([]*Customer, error)

	// Delete removes the customer row. Service lines and payments owned by
	// the customer are removed by the storage layer in the same operation.
	Delete(ctx context.Context, customerID int64) error

	Exists(ctx context.Context, customerID int64) (bool, error)
}
