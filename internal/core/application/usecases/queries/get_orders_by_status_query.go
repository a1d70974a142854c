package queries

import (
	"errors"

	"kebabhouse/internal/core/domain/model/order"
	"kebabhouse/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves every order currently sitting in one
// lifecycle stage. The kitchen works the Confirmed list, the counter the
// Ready list.
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for one lifecycle stage.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}
