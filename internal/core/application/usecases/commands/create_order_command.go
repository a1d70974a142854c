package commands

import (
	"errors"

	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/menu"
	"kebabhouse/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDishIDIsRequired = errors.New("dish id is required")
)

// CreateOrderCommand represents a request to place a new order: one base dish
// from the menu plus the selected add-on kinds, on behalf of one customer.
// Add-on kinds are carried as-is; the closed catalog validates them when the
// item is composed.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	dishID     menu.DishID
	addOns     []menu.AddOnKind

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Validates that order and customer ids are valid and a dish is named.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	dishID menu.DishID,
	addOns []menu.AddOnKind,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDishID(dishID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.addOns = make([]menu.AddOnKind, len(addOns))
	copy(cmd.addOns, addOns)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the order number assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DishID returns the selected base dish.
func (c CreateOrderCommand) DishID() menu.DishID {
	return c.dishID
}

// AddOns returns the selected add-on kinds in selection order.
func (c CreateOrderCommand) AddOns() []menu.AddOnKind {
	out := make([]menu.AddOnKind, len(c.addOns))
	copy(out, c.addOns)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDishID(dishID menu.DishID) error {
	if dishID == "" {
		return ErrDishIDIsRequired
	}
	c.dishID = dishID
	return nil
}
