package queries

import (
	"context"

	"kebabhouse/internal/core/ports"
)

// GetOrdersByStatusQueryHandler retrieves the worklist for one lifecycle
// stage, oldest order first so the queue is served in placement order.
type GetOrdersByStatusQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersByStatusQueryHandler creates a handler for status worklist queries.
func NewGetOrdersByStatusQueryHandler(orders ports.OrderRepository) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orders: orders}
}

// Handle executes the query. An empty stage yields an empty slice, not an
// error.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.orders.GetByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	return projectOrders(found), nil
}
