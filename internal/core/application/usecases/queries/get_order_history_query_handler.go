package queries

import (
	"context"

	"kebabhouse/internal/core/domain/model/order"
	"kebabhouse/internal/core/ports"
)

// GetOrderHistoryQueryHandler retrieves a customer's full order history.
// Cancelled and delivered orders are included; history is an audit trail,
// not a worklist.
type GetOrderHistoryQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
func NewGetOrderHistoryQueryHandler(orders ports.OrderRepository) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{orders: orders}
}

// Handle executes the query. Returns the customer's orders oldest first;
// a customer with no orders gets an empty slice, not an error.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.orders.GetByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	return projectOrders(found), nil
}

// projectOrders maps order aggregates onto their read-side projection.
func projectOrders(orders []*order.Order) []OrderQueryResponse {
	responses := make([]OrderQueryResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]OrderItemQueryResponse, 0, len(o.Items()))
		prepMinutes := 0
		for _, item := range o.Items() {
			items = append(items, OrderItemQueryResponse{
				Description:     item.Description(),
				Cost:            item.Cost(),
				DurationMinutes: item.DurationMinutes(),
			})
			prepMinutes += item.DurationMinutes()
		}

		responses = append(responses, OrderQueryResponse{
			ID:          o.ID(),
			CustomerID:  o.CustomerID(),
			Status:      o.Status(),
			Total:       o.Total(),
			Items:       items,
			CreatedAt:   o.CreatedAt(),
			PrepMinutes: prepMinutes,
		})
	}
	return responses
}
