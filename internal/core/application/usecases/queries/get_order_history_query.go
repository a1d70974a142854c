// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries go through the order repository port so every storage backend
// serves reads the same way.
package queries

import (
	"errors"
	"time"

	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/order"
	"kebabhouse/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves every order a customer has ever placed,
// regardless of status, oldest first.
type GetOrderHistoryQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for one customer's order history.
func NewGetOrderHistoryQuery(customerID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		customerID: customerID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderHistoryQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderQueryResponse is the read-side projection of an order.
type OrderQueryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Status      order.Status
	Total       kernel.Money
	Items       []OrderItemQueryResponse
	CreatedAt   time.Time
	PrepMinutes int
}

// OrderItemQueryResponse is the read-side projection of a single priced item.
type OrderItemQueryResponse struct {
	Description     string
	Cost            kernel.Money
	DurationMinutes int
}
