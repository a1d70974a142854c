package commands

import (
	"context"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler handles the business logic for moving an order
// through its lifecycle. Loads the aggregate, lets the domain enforce the
// transition graph and the acting role's authorization, and persists the
// result in the same unit of work.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for order transitions.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the order transition command.
// Customers may only act on orders they own; vendors and administrators act
// on any order. Returns the updated aggregate.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	role := cmd.ActingRole()
	if role.IsCustomer() && !target.IsOwnedBy(role.User().ID()) {
		return nil, account.NewMissingAuthorizationError("act on someone else's order")
	}

	if err = target.Advance(cmd.Target(), role); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
