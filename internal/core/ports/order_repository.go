package ports

import (
	"context"

	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every backend (relational, file-backed, in-memory) must behave identically
// with respect to this contract.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with ObjectNotFoundError when the order number is absent;
	// it never silently inserts.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its order number.
	// Fails with ObjectNotFoundError when the order number is absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves every order belonging to the given customer,
	// oldest first. An empty result is not an error.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByStatus retrieves every order currently in the given status,
	// oldest first. An empty result is not an error.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
