package order

import (
	"errors"
	"fmt"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for moves outside the transition graph.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError is returned when a target status is not a direct
// successor of the current one. Re-requesting an already-reached status fails
// the same way: the graph has no self-loop edges.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates the error for the offending edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Confirmed ──> InPreparation ──> Ready ──> Delivered
//	   │            │               │
//	   └────────────┴───────────────┴──> Cancelled
//
// Created is the sole initial state; Delivered and Cancelled are terminal.
// Status is a value object that validates transitions, checks the acting
// role's capability for each edge, and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	Created

	// Confirmed indicates the order has been accepted for preparation.
	Confirmed

	// InPreparation indicates the kitchen is working on the order.
	InPreparation

	// Ready indicates the order is prepared and waiting for hand-off.
	// Orders can no longer be cancelled from this point on.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before it was ready.
	// Terminal; reachable only from Created, Confirmed and InPreparation.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Created:       "Created",
		Confirmed:     "Confirmed",
		InPreparation: "InPreparation",
		Ready:         "Ready",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:       "Created",
		Confirmed:     "Confirmed",
		InPreparation: "InPreparation",
		Ready:         "Ready",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

// getSuccessors returns the direct successors of each status. A status absent
// from the result of a lookup is terminal.
func getSuccessors() map[Status][]Status {
	return map[Status][]Status{
		Created:       {Confirmed, Cancelled},
		Confirmed:     {InPreparation, Cancelled},
		InPreparation: {Ready, Cancelled},
		Ready:         {Delivered},
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus resolves a status from its string name, as supplied by the UI
// layer. Unknown names fail with ValueIsInvalidError.
func ParseStatus(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status name", name))
}

// IsTerminal reports whether no further transition leaves the status.
func (s Status) IsTerminal() bool {
	return len(getSuccessors()[s]) == 0
}

// CanTransitionTo reports whether target is a direct successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, succ := range getSuccessors()[s] {
		if succ == target {
			return true
		}
	}
	return false
}

// authorizeEdge checks the acting role's capability for the edge s -> target.
// Capability requirements per edge:
//   - any authenticated role may confirm a created order
//   - the kitchen stages (Confirmed -> InPreparation -> Ready) require the
//     vendor or administrator capability
//   - cancellation requires the customer or administrator capability
//   - the final hand-off to Delivered requires the administrator capability
func authorizeEdge(target Status, actingRole account.Role) error {
	switch target {
	case Cancelled:
		if !actingRole.IsCustomer() && !actingRole.IsAdministrator() {
			return account.NewMissingAuthorizationError("customer or administrator")
		}
	case InPreparation, Ready:
		if !actingRole.IsVendor() && !actingRole.IsAdministrator() {
			return account.NewMissingAuthorizationError("vendor or administrator")
		}
	case Delivered:
		if !actingRole.IsAdministrator() {
			return account.NewMissingAuthorizationError("administrator")
		}
	}
	return nil
}

// TransitionTo validates the move from s to target for the acting role and
// returns the new status. The transition check runs before the capability
// check, so an impossible edge is always InvalidTransitionError regardless of
// who asks.
//
// Returns:
//   - (target, nil) on a valid, authorized transition
//   - (0, InvalidTransitionError) if target is not a direct successor of s
//   - (0, MissingAuthorizationError) if the role lacks the edge's capability
func (s Status) TransitionTo(target Status, actingRole account.Role) (Status, error) {
	if err := actingRole.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, NewInvalidTransitionError(s, target)
	}

	if err := authorizeEdge(target, actingRole); err != nil {
		return 0, err
	}

	return target, nil
}
