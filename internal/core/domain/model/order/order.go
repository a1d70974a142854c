package order

import (
	"errors"
	"time"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/menu"
	"kebabhouse/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrNoItems is returned when an order is created with an empty item list.
	ErrNoItems = errs.NewValueIsRequiredError("items")
)

// Order represents a customer's purchase request. It is the aggregate root
// that manages the order lifecycle from creation through the kitchen to
// delivery or cancellation.
//
// Order follows these invariants:
//   - The order number is assigned once, at creation, and never reused
//   - The total always equals the sum of each item's composed cost
//   - Status transitions follow the graph defined on Status, under the
//     role capabilities each edge requires
//   - Orders are never physically deleted; cancellation is a status
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the order number, unique and assigned at creation
	id kernel.UUID

	// customerID identifies the customer the order belongs to
	customerID kernel.UUID

	// createdAt is the placement timestamp
	createdAt time.Time

	// items is the ordered sequence of composed food items
	items []menu.FoodItem

	// total is the sum of each item's composed cost
	total kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Created status. This is the only way to
// create a fresh order, ensuring all business invariants are maintained.
// The total is computed here from the items and never stored separately
// from them.
func NewOrder(id, customerID kernel.UUID, createdAt time.Time, items []menu.FoodItem) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCreatedAt(createdAt),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence with an explicit
// status. The total is recomputed from the items, so a stored record can
// never resurface with a total that disagrees with its item list.
func RestoreOrder(id, customerID kernel.UUID, createdAt time.Time, items []menu.FoodItem, status Status) (*Order, error) {
	order, err := NewOrder(id, customerID, createdAt, items)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order number.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the composed food items in selection order.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Items() []menu.FoodItem {
	items := make([]menu.FoodItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total, the sum of each item's composed cost.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsOwnedBy reports whether the order belongs to the given customer.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// Advance moves the order to targetStatus on behalf of actingRole.
//
// Fails with InvalidTransitionError if targetStatus is not a direct successor
// of the current status, and with MissingAuthorizationError if the role lacks
// the capability the edge requires. On success only the status changes; the
// total and the items are untouched.
func (o *Order) Advance(targetStatus Status, actingRole account.Role) error {
	newStatus, err := o.status.TransitionTo(targetStatus, actingRole)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order number.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

// setCreatedAt validates and sets the placement timestamp.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setItems validates the items and computes the total from them.
func (o *Order) setItems(items []menu.FoodItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	total := kernel.ZeroMoney()
	copied := make([]menu.FoodItem, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		copied[i] = item
		total = total.Add(item.Cost())
	}

	o.items = copied
	o.total = total
	return nil
}
