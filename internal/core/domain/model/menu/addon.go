package menu

import (
	"errors"
	"fmt"

	"kebabhouse/internal/core/domain/model/kernel"
)

// ErrUnknownAddOn is the sentinel for add-on kinds outside the closed catalog.
var ErrUnknownAddOn = errors.New("unknown add-on")

// UnknownAddOnError is returned when a requested add-on kind is not part of
// the catalog. Catalog membership is closed and validated at selection time.
type UnknownAddOnError struct {
	Kind string
}

// NewUnknownAddOnError creates an UnknownAddOnError for the given kind.
func NewUnknownAddOnError(kind string) *UnknownAddOnError {
	return &UnknownAddOnError{Kind: kind}
}

func (e *UnknownAddOnError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownAddOn, e.Kind)
}

func (e *UnknownAddOnError) Unwrap() error {
	return ErrUnknownAddOn
}

// AddOnKind identifies an add-on in the closed catalog.
type AddOnKind string

// The closed add-on catalog. There is no way to register further kinds at
// runtime; an order can only reference these.
const (
	AddOnCipolla          AddOnKind = "cipolla"
	AddOnSalsaYogurt      AddOnKind = "salsa-yogurt"
	AddOnPatatine         AddOnKind = "patatine"
	AddOnVerdureGrigliate AddOnKind = "verdure-grigliate"
)

// AddOn is an immutable value object describing a single modifier: its display
// name, the cost it adds, and the preparation minutes it adds. Both deltas are
// non-negative.
type AddOn struct {
	kind            AddOnKind
	name            string
	costDelta       kernel.Money
	durationMinutes int
}

// getAddOnCatalog returns the closed catalog keyed by kind.
func getAddOnCatalog() map[AddOnKind]AddOn {
	return map[AddOnKind]AddOn{
		AddOnCipolla: {
			kind:            AddOnCipolla,
			name:            "Cipolla",
			costDelta:       kernel.MustMoneyFromString("0.50"),
			durationMinutes: 1,
		},
		AddOnSalsaYogurt: {
			kind:            AddOnSalsaYogurt,
			name:            "Salsa Yogurt",
			costDelta:       kernel.MustMoneyFromString("1.00"),
			durationMinutes: 2,
		},
		AddOnPatatine: {
			kind:            AddOnPatatine,
			name:            "Patatine",
			costDelta:       kernel.MustMoneyFromString("2.00"),
			durationMinutes: 3,
		},
		AddOnVerdureGrigliate: {
			kind:            AddOnVerdureGrigliate,
			name:            "Verdure Grigliate",
			costDelta:       kernel.MustMoneyFromString("1.50"),
			durationMinutes: 4,
		},
	}
}

// AddOnByKind resolves a kind against the closed catalog.
// Returns UnknownAddOnError for any kind outside it.
func AddOnByKind(kind AddOnKind) (AddOn, error) {
	addOn, ok := getAddOnCatalog()[kind]
	if !ok {
		return AddOn{}, NewUnknownAddOnError(string(kind))
	}
	return addOn, nil
}

// AllAddOns returns every catalog add-on in a stable order, for display.
func AllAddOns() []AddOn {
	kinds := []AddOnKind{AddOnCipolla, AddOnSalsaYogurt, AddOnPatatine, AddOnVerdureGrigliate}
	addOns := make([]AddOn, 0, len(kinds))
	for _, kind := range kinds {
		addOn, _ := AddOnByKind(kind)
		addOns = append(addOns, addOn)
	}
	return addOns
}

// Kind returns the catalog identifier of the add-on.
func (a AddOn) Kind() AddOnKind {
	return a.kind
}

// Name returns the display name of the add-on.
func (a AddOn) Name() string {
	return a.name
}

// CostDelta returns the cost contribution of the add-on.
func (a AddOn) CostDelta() kernel.Money {
	return a.costDelta
}

// DurationMinutes returns the preparation time contribution in minutes.
func (a AddOn) DurationMinutes() int {
	return a.durationMinutes
}
