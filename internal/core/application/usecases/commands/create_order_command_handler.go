package commands

import (
	"context"
	"time"

	"kebabhouse/internal/core/domain/model/menu"
	"kebabhouse/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Composes the priced food item from the command's selections, creates the
// order in Created status and persists it transactionally.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the order placement command.
// Resolves the dish against the menu, composes the item with the selected
// add-ons (unknown kinds surface UnknownAddOnError), and commits the new
// order. Returns the created aggregate.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	dish, err := menu.BaseDishByID(cmd.DishID())
	if err != nil {
		return nil, err
	}

	item, err := menu.Compose(dish, cmd.AddOns()...)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), h.now(), []menu.FoodItem{item})
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
