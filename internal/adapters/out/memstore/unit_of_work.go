package memstore

import (
	"context"
	"errors"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/order"
	"kebabhouse/internal/core/ports"
	"kebabhouse/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit when Begin was never called.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates in-memory units of work over a shared store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work for a single business transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork serializes a business transaction against the store. Begin
// acquires the store mutex and snapshots state; Commit releases the mutex
// keeping the changes, Rollback restores the snapshot first. Holding the
// mutex across the whole transaction means a status read and the update
// that depends on it observe the same state.
type UnitOfWork struct {
	store    *Store
	active   bool
	snapshot storeSnapshot
}

// Begin starts a new transaction. Calling Begin on an active
// transaction is a no-op.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return nil
	}

	u.store.mu.Lock()
	u.snapshot = u.store.snapshotLocked()
	u.active = true
	return nil
}

// Commit keeps the changes made since Begin and ends the transaction.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}

	u.active = false
	u.snapshot = storeSnapshot{}
	u.store.mu.Unlock()
	return nil
}

// Rollback discards the changes made since Begin. Rollback without an
// active transaction is a no-op, so handlers can keep it deferred.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}

	u.store.restoreLocked(u.snapshot)
	u.active = false
	u.snapshot = storeSnapshot{}
	u.store.mu.Unlock()
	return nil
}

// OrderRepository returns an order repository bound to this transaction.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &txOrderRepository{uow: u}
}

// UserRepository returns a user repository bound to this transaction.
func (u *UnitOfWork) UserRepository() ports.UserRepository {
	return &txUserRepository{uow: u}
}

// RoleRepository returns a role repository bound to this transaction.
func (u *UnitOfWork) RoleRepository() ports.RoleRepository {
	return &txRoleRepository{uow: u}
}

// transaction-bound repositories
//
// These operate on the store directly because the unit of work already
// holds the mutex. Using them outside an active transaction is a
// programming error and fails fast.

type txOrderRepository struct {
	uow *UnitOfWork
}

func (r *txOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.store.addOrderLocked(aggregate)
}

func (r *txOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.store.updateOrderLocked(aggregate)
}

func (r *txOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.uow.store.getOrderLocked(id)
}

func (r *txOrderRepository) GetByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return r.uow.store.ordersWhereLocked(func(o *order.Order) bool {
		return o.IsOwnedBy(customerID)
	})
}

func (r *txOrderRepository) GetByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.uow.store.ordersWhereLocked(func(o *order.Order) bool {
		return o.Status() == status
	})
}

type txUserRepository struct {
	uow *UnitOfWork
}

func (r *txUserRepository) Add(_ context.Context, user account.User) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := user.Validate(); err != nil {
		return err
	}
	r.uow.store.addUserLocked(user)
	return nil
}

func (r *txUserRepository) Get(_ context.Context, id kernel.UUID) (account.User, error) {
	if !r.uow.active {
		return account.User{}, ErrNoActiveTransaction
	}
	if err := id.Validate(); err != nil {
		return account.User{}, err
	}
	return r.uow.store.getUserLocked(id)
}

func (r *txUserRepository) GetByTaxID(_ context.Context, taxID string) (account.User, error) {
	if !r.uow.active {
		return account.User{}, ErrNoActiveTransaction
	}
	if taxID == "" {
		return account.User{}, errs.NewValueIsRequiredError("taxId")
	}
	return r.uow.store.getUserByTaxIDLocked(taxID)
}

type txRoleRepository struct {
	uow *UnitOfWork
}

func (r *txRoleRepository) Add(_ context.Context, role account.Role) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := role.Validate(); err != nil {
		return err
	}
	r.uow.store.addRoleLocked(role)
	return nil
}

func (r *txRoleRepository) GetByUser(_ context.Context, userID kernel.UUID) (account.Role, error) {
	if !r.uow.active {
		return account.Role{}, ErrNoActiveTransaction
	}
	if err := userID.Validate(); err != nil {
		return account.Role{}, err
	}
	return r.uow.store.getRoleByUserLocked(userID)
}
