package memstore

import (
	"context"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/pkg/errs"
)

// UserRepository adapts the store to the user persistence port.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over the given store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Add persists a new user record.
func (r *UserRepository) Add(_ context.Context, user account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.addUserLocked(user)
	return nil
}

// Get retrieves a user by its unique identifier.
func (r *UserRepository) Get(_ context.Context, id kernel.UUID) (account.User, error) {
	if err := id.Validate(); err != nil {
		return account.User{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.getUserLocked(id)
}

// GetByTaxID retrieves a user by its tax identification code.
func (r *UserRepository) GetByTaxID(_ context.Context, taxID string) (account.User, error) {
	if taxID == "" {
		return account.User{}, errs.NewValueIsRequiredError("taxId")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.getUserByTaxIDLocked(taxID)
}

// RoleRepository adapts the store to the role persistence port.
type RoleRepository struct {
	store *Store
}

// NewRoleRepository creates a role repository over the given store.
func NewRoleRepository(store *Store) *RoleRepository {
	return &RoleRepository{store: store}
}

// Add persists the user's role record, replacing any previous one.
func (r *RoleRepository) Add(_ context.Context, role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.addRoleLocked(role)
	return nil
}

// GetByUser retrieves the role of the given user.
func (r *RoleRepository) GetByUser(_ context.Context, userID kernel.UUID) (account.Role, error) {
	if err := userID.Validate(); err != nil {
		return account.Role{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.getRoleByUserLocked(userID)
}
