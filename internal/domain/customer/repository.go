package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint64) (*Customer, error)
	// GetByIDForUpdate locks the customer row for the duration of the
	// surrounding transaction. Serializes concurrent originations per customer.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Customer, error)
}
