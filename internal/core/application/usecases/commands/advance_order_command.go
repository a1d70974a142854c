package commands

import (
	"errors"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/order"
	"kebabhouse/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand is not constructed, use NewAdvanceOrderCommand")

// AdvanceOrderCommand requests a status transition on an existing order.
// Carries the acting role so the lifecycle can enforce who may drive
// which edge.
//
//nolint:recvcheck //using for validation
type AdvanceOrderCommand struct {
	orderID    kernel.UUID
	target     order.Status
	actingRole account.Role

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a validated command for an order transition.
func NewAdvanceOrderCommand(
	orderID kernel.UUID, target order.Status, actingRole account.Role,
) (AdvanceOrderCommand, error) {
	err := errors.Join(
		orderID.Validate(),
		target.Validate(),
		actingRole.Validate(),
	)
	if err != nil {
		return AdvanceOrderCommand{}, err
	}

	return AdvanceOrderCommand{
		orderID:    orderID,
		target:     target,
		actingRole: actingRole,

		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}

func (c AdvanceOrderCommand) ActingRole() account.Role {
	return c.actingRole
}

func (c *AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}
