package menu

import (
	"errors"

	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/pkg/errs"
)

var (
	// ErrDishNameIsRequired is returned when a base dish is created without a name.
	ErrDishNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDishIsNotConstructed is returned when using a zero-value BaseDish.
	ErrDishIsNotConstructed = errors.New("BaseDish must be created via NewBaseDish or BaseDishByID")
)

// DishID identifies a dish on the fixed menu.
type DishID string

// The fixed dish menu.
const (
	DishPaninoDonerKebab DishID = "panino-doner-kebab"
	DishPiadinaKebab     DishID = "piadina-kebab"
	DishPiattoKebab      DishID = "piatto-kebab"
)

// BaseDish is an immutable value object for a dish on the menu: display name,
// base cost and base preparation time. It is the starting point of every
// composition.
type BaseDish struct {
	id              DishID
	name            string
	cost            kernel.Money
	durationMinutes int
}

// getDishMenu returns the fixed menu keyed by dish id.
func getDishMenu() map[DishID]BaseDish {
	return map[DishID]BaseDish{
		DishPaninoDonerKebab: {
			id:              DishPaninoDonerKebab,
			name:            "Panino Doner Kebab",
			cost:            kernel.MustMoneyFromString("5.50"),
			durationMinutes: 5,
		},
		DishPiadinaKebab: {
			id:              DishPiadinaKebab,
			name:            "Piadina Kebab",
			cost:            kernel.MustMoneyFromString("5.00"),
			durationMinutes: 4,
		},
		DishPiattoKebab: {
			id:              DishPiattoKebab,
			name:            "Piatto Kebab",
			cost:            kernel.MustMoneyFromString("7.50"),
			durationMinutes: 8,
		},
	}
}

// BaseDishByID resolves a dish id against the fixed menu.
// Returns ObjectNotFoundError for ids outside it.
func BaseDishByID(id DishID) (BaseDish, error) {
	dish, ok := getDishMenu()[id]
	if !ok {
		return BaseDish{}, errs.NewObjectNotFoundError("dishId", string(id))
	}
	return dish, nil
}

// AllBaseDishes returns every menu dish in a stable order, for display.
func AllBaseDishes() []BaseDish {
	ids := []DishID{DishPaninoDonerKebab, DishPiadinaKebab, DishPiattoKebab}
	dishes := make([]BaseDish, 0, len(ids))
	for _, id := range ids {
		dish, _ := BaseDishByID(id)
		dishes = append(dishes, dish)
	}
	return dishes
}

// NewBaseDish creates a dish outside the fixed menu, e.g. a daily special.
// The name must be non-empty, the duration non-negative.
func NewBaseDish(id DishID, name string, cost kernel.Money, durationMinutes int) (BaseDish, error) {
	if name == "" {
		return BaseDish{}, ErrDishNameIsRequired
	}
	if durationMinutes < 0 {
		return BaseDish{}, errs.NewValueIsInvalidError("durationMinutes")
	}

	return BaseDish{
		id:              id,
		name:            name,
		cost:            cost,
		durationMinutes: durationMinutes,
	}, nil
}

// Validate reports whether the dish carries a name, the marker every
// constructed dish has.
func (d BaseDish) Validate() error {
	if d.name == "" {
		return ErrDishIsNotConstructed
	}
	return nil
}

// ID returns the menu identifier of the dish.
func (d BaseDish) ID() DishID {
	return d.id
}

// Name returns the display name of the dish.
func (d BaseDish) Name() string {
	return d.name
}

// Cost returns the base cost of the dish.
func (d BaseDish) Cost() kernel.Money {
	return d.cost
}

// DurationMinutes returns the base preparation time in minutes.
func (d BaseDish) DurationMinutes() int {
	return d.durationMinutes
}
