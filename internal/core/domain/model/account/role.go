package account

import (
	"errors"
	"fmt"

	"kebabhouse/internal/pkg/guard"
)

var (
	// ErrMissingAuthorization is the sentinel for capability checks that fail.
	ErrMissingAuthorization = errors.New("missing authorization")
	// ErrUnrecognizedRole is the sentinel for roles whose discriminator is not
	// one of the three known kinds.
	ErrUnrecognizedRole = errors.New("unrecognized role")
	// ErrRoleIsNotConstructed is returned when using a zero-value Role.
	ErrRoleIsNotConstructed = errors.New("Role must be created via NewCustomerRole, NewVendorRole, NewAdministratorRole, or RestoreRole")
)

// MissingAuthorizationError is returned when a capability is requested from a
// role that does not carry it. It is always an error, never an empty result,
// so callers cannot confuse "not allowed" with "nothing found".
type MissingAuthorizationError struct {
	Capability string
}

// NewMissingAuthorizationError creates the error for the named capability.
func NewMissingAuthorizationError(capability string) *MissingAuthorizationError {
	return &MissingAuthorizationError{Capability: capability}
}

func (e *MissingAuthorizationError) Error() string {
	return fmt.Sprintf("%s: %s capability required", ErrMissingAuthorization, e.Capability)
}

func (e *MissingAuthorizationError) Unwrap() error {
	return ErrMissingAuthorization
}

// UnrecognizedRoleError is returned when none of the three capability probes
// succeeds. Unreachable for roles built through the constructors; it guards
// data restored from persistence.
type UnrecognizedRoleError struct {
	Kind RoleKind
}

// NewUnrecognizedRoleError creates the error for the offending discriminator.
func NewUnrecognizedRoleError(kind RoleKind) *UnrecognizedRoleError {
	return &UnrecognizedRoleError{Kind: kind}
}

func (e *UnrecognizedRoleError) Error() string {
	return fmt.Sprintf("%s: %d is not a known role kind", ErrUnrecognizedRole, int(e.Kind))
}

func (e *UnrecognizedRoleError) Unwrap() error {
	return ErrUnrecognizedRole
}

// RoleKind is the explicit discriminator of the role variant.
type RoleKind int

const (
	// RoleUnknown represents an invalid or undefined role kind.
	// This value (0) helps catch uninitialized RoleKind values.
	RoleUnknown RoleKind = iota

	// RoleCustomer places orders and may cancel them while still cancellable.
	RoleCustomer

	// RoleVendor is the kebabbaro: drives orders through the kitchen stages.
	RoleVendor

	// RoleAdministrator manages accounts and may drive any transition.
	RoleAdministrator
)

// getRoleKindStrings returns a map of RoleKind values to their string
// representations. All kinds are included for string conversion.
func getRoleKindStrings() map[RoleKind]string {
	return map[RoleKind]string{
		RoleUnknown:       "Unknown",
		RoleCustomer:      "Customer",
		RoleVendor:        "Vendor",
		RoleAdministrator: "Administrator",
	}
}

// getValidRoleKindStrings returns only the valid kinds, to support validation.
func getValidRoleKindStrings() map[RoleKind]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[RoleKind]string{
		RoleCustomer:      "Customer",
		RoleVendor:        "Vendor",
		RoleAdministrator: "Administrator",
	}
}

// Validate checks if the RoleKind value is one of the three known kinds.
func (k RoleKind) Validate() error {
	if _, ok := getValidRoleKindStrings()[k]; !ok {
		return NewUnrecognizedRoleError(k)
	}
	return nil
}

// String returns the human-readable name of the kind.
// Safe to call on any value, including invalid ones.
func (k RoleKind) String() string {
	if str, ok := getRoleKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Role is the authorization-bearing identity of a user: a tagged variant over
// the three disjoint capabilities, each exclusively wrapping one User. Exactly
// one of AsCustomer, AsVendor, AsAdministrator succeeds per instance; the
// other two fail with MissingAuthorizationError.
type Role struct {
	kind RoleKind
	user User

	guard guard.ConstructorGuard
}

// Customer is the concrete customer capability wrapping one user.
type Customer struct {
	user User
}

// Vendor is the concrete vendor capability wrapping one user.
type Vendor struct {
	user User
}

// Administrator is the concrete administrator capability wrapping one user.
type Administrator struct {
	user User
}

// User returns the wrapped user.
func (c Customer) User() User { return c.user }

// User returns the wrapped user.
func (v Vendor) User() User { return v.user }

// User returns the wrapped user.
func (a Administrator) User() User { return a.user }

// NewCustomerRole creates the customer role for a user.
func NewCustomerRole(user User) (Role, error) {
	return newRole(RoleCustomer, user)
}

// NewVendorRole creates the vendor role for a user.
func NewVendorRole(user User) (Role, error) {
	return newRole(RoleVendor, user)
}

// NewAdministratorRole creates the administrator role for a user.
func NewAdministratorRole(user User) (Role, error) {
	return newRole(RoleAdministrator, user)
}

// RestoreRole reconstructs a role from persistence. The discriminator must be
// one of the three known kinds.
func RestoreRole(kind RoleKind, user User) (Role, error) {
	return newRole(kind, user)
}

func newRole(kind RoleKind, user User) (Role, error) {
	if err := kind.Validate(); err != nil {
		return Role{}, err
	}
	if err := user.Validate(); err != nil {
		return Role{}, err
	}

	return Role{
		kind:  kind,
		user:  user,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the role was created through a constructor.
func (r Role) Validate() error {
	return r.guard.Validate(ErrRoleIsNotConstructed)
}

// Kind returns the explicit discriminator.
func (r Role) Kind() RoleKind {
	return r.kind
}

// User returns the user this role wraps.
func (r Role) User() User {
	return r.user
}

// AsCustomer returns the customer capability, or MissingAuthorizationError
// when the role is not a customer.
func (r Role) AsCustomer() (Customer, error) {
	if r.kind != RoleCustomer {
		return Customer{}, NewMissingAuthorizationError("customer")
	}
	return Customer{user: r.user}, nil
}

// AsVendor returns the vendor capability, or MissingAuthorizationError when
// the role is not a vendor.
func (r Role) AsVendor() (Vendor, error) {
	if r.kind != RoleVendor {
		return Vendor{}, NewMissingAuthorizationError("vendor")
	}
	return Vendor{user: r.user}, nil
}

// AsAdministrator returns the administrator capability, or
// MissingAuthorizationError when the role is not an administrator.
func (r Role) AsAdministrator() (Administrator, error) {
	if r.kind != RoleAdministrator {
		return Administrator{}, NewMissingAuthorizationError("administrator")
	}
	return Administrator{user: r.user}, nil
}

// IsCustomer reports whether the customer capability is present.
func (r Role) IsCustomer() bool { return r.kind == RoleCustomer }

// IsVendor reports whether the vendor capability is present.
func (r Role) IsVendor() bool { return r.kind == RoleVendor }

// IsAdministrator reports whether the administrator capability is present.
func (r Role) IsAdministrator() bool { return r.kind == RoleAdministrator }

// ResolveRoleKind determines which of the three capabilities a role carries by
// probing the accessors in a fixed order: Customer, then Vendor, then
// Administrator. The first accessor that succeeds decides. If none succeeds
// it surfaces UnrecognizedRoleError; that is unreachable for constructed
// roles and exists to keep the invariant checkable.
func ResolveRoleKind(role Role) (RoleKind, error) {
	if _, err := role.AsCustomer(); err == nil {
		return RoleCustomer, nil
	}
	if _, err := role.AsVendor(); err == nil {
		return RoleVendor, nil
	}
	if _, err := role.AsAdministrator(); err == nil {
		return RoleAdministrator, nil
	}
	return RoleUnknown, NewUnrecognizedRoleError(role.kind)
}
