package menu

import (
	"errors"
	"strings"

	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/pkg/guard"
)

// ErrFoodItemIsNotConstructed is returned when a FoodItem was not created
// through Compose or StandaloneAddOn.
var ErrFoodItemIsNotConstructed = errors.New("FoodItem must be created via Compose or StandaloneAddOn")

// FoodItem is the priced, timed result of composing a base dish with an
// ordered set of add-ons. It is an immutable value object; cost and duration
// are always the sum of the base values plus every applied add-on's
// contribution.
//
// A FoodItem may also represent a single add-on with no base attached, for
// catalog display. In that mode the composed values equal the add-on's own
// deltas.
type FoodItem struct {
	base   BaseDish
	addOns []AddOn

	guard guard.ConstructorGuard
}

// Compose builds a FoodItem from a base dish plus the requested add-on kinds,
// in selection order. Every kind is validated against the closed catalog;
// an unknown kind fails with UnknownAddOnError and no item is produced.
//
// Addition is commutative, so reordering the same add-ons changes only the
// description, never the cost or duration.
func Compose(base BaseDish, kinds ...AddOnKind) (FoodItem, error) {
	if err := base.Validate(); err != nil {
		return FoodItem{}, err
	}

	addOns := make([]AddOn, 0, len(kinds))
	for _, kind := range kinds {
		addOn, err := AddOnByKind(kind)
		if err != nil {
			return FoodItem{}, err
		}
		addOns = append(addOns, addOn)
	}

	return FoodItem{
		base:   base,
		addOns: addOns,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// StandaloneAddOn builds a FoodItem listing a single add-on with no base
// attached. Used by the catalog display; the item's cost and duration are the
// add-on's own deltas.
func StandaloneAddOn(kind AddOnKind) (FoodItem, error) {
	addOn, err := AddOnByKind(kind)
	if err != nil {
		return FoodItem{}, err
	}

	return FoodItem{
		addOns: []AddOn{addOn},
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through Compose or StandaloneAddOn.
func (f FoodItem) Validate() error {
	return f.guard.Validate(ErrFoodItemIsNotConstructed)
}

// Base returns the base dish. For a standalone add-on listing the returned
// dish is the zero value and its Validate fails.
func (f FoodItem) Base() BaseDish {
	return f.base
}

// AddOns returns the applied add-ons in selection order.
// The returned slice is a copy; mutating it does not affect the item.
func (f FoodItem) AddOns() []AddOn {
	out := make([]AddOn, len(f.addOns))
	copy(out, f.addOns)
	return out
}

// Cost folds the base cost with every add-on's cost delta.
func (f FoodItem) Cost() kernel.Money {
	total := f.base.Cost()
	for _, addOn := range f.addOns {
		total = total.Add(addOn.CostDelta())
	}
	return total
}

// DurationMinutes folds the base preparation time with every add-on's
// duration delta.
func (f FoodItem) DurationMinutes() int {
	total := f.base.DurationMinutes()
	for _, addOn := range f.addOns {
		total += addOn.DurationMinutes()
	}
	return total
}

// Description renders the item as "Base + AddOn + AddOn" in selection order.
// This is the only place where add-on order is observable.
func (f FoodItem) Description() string {
	parts := make([]string, 0, len(f.addOns)+1)
	if f.base.Name() != "" {
		parts = append(parts, f.base.Name())
	}
	for _, addOn := range f.addOns {
		parts = append(parts, addOn.Name())
	}
	return strings.Join(parts, " + ")
}
