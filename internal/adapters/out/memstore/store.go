// Package memstore provides a map-backed implementation of the persistence
// ports, used for demos and tests where no database is available. One mutex
// guards all state; the unit of work holds it from Begin to Commit, so a
// status check and the write that depends on it cannot interleave with
// another writer.
package memstore

import (
	"context"
	"sort"
	"sync"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/order"
	"kebabhouse/internal/pkg/errs"
)

// Store is the shared in-memory state behind the repositories.
// Aggregates are cloned on the way in and out, so callers can never mutate
// stored state except through Update.
type Store struct {
	mu     sync.Mutex
	orders map[kernel.UUID]*order.Order
	users  map[kernel.UUID]account.User
	roles  map[kernel.UUID]account.Role
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		orders: make(map[kernel.UUID]*order.Order),
		users:  make(map[kernel.UUID]account.User),
		roles:  make(map[kernel.UUID]account.Role),
	}
}

// cloneOrder rebuilds the aggregate so the store and the caller never share
// mutable state.
func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(o.ID(), o.CustomerID(), o.CreatedAt(), o.Items(), o.Status())
}

// unlocked primitives, called with s.mu held

func (s *Store) addOrderLocked(aggregate *order.Order) error {
	if _, exists := s.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("orderId")
	}

	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}
	s.orders[aggregate.ID()] = stored
	return nil
}

func (s *Store) updateOrderLocked(aggregate *order.Order) error {
	if _, exists := s.orders[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}
	s.orders[aggregate.ID()] = stored
	return nil
}

func (s *Store) getOrderLocked(id kernel.UUID) (*order.Order, error) {
	stored, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return cloneOrder(stored)
}

func (s *Store) ordersWhereLocked(keep func(*order.Order) bool) ([]*order.Order, error) {
	found := make([]*order.Order, 0)
	for _, stored := range s.orders {
		if keep(stored) {
			clone, err := cloneOrder(stored)
			if err != nil {
				return nil, err
			}
			found = append(found, clone)
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].CreatedAt().Before(found[j].CreatedAt())
	})
	return found, nil
}

func (s *Store) addUserLocked(user account.User) {
	s.users[user.ID()] = user
}

func (s *Store) getUserLocked(id kernel.UUID) (account.User, error) {
	user, ok := s.users[id]
	if !ok {
		return account.User{}, errs.NewObjectNotFoundError("user", id.String())
	}
	return user, nil
}

func (s *Store) getUserByTaxIDLocked(taxID string) (account.User, error) {
	for _, user := range s.users {
		if user.TaxID() == taxID {
			return user, nil
		}
	}
	return account.User{}, errs.NewObjectNotFoundError("user", taxID)
}

func (s *Store) addRoleLocked(role account.Role) {
	s.roles[role.User().ID()] = role
}

func (s *Store) getRoleByUserLocked(userID kernel.UUID) (account.Role, error) {
	role, ok := s.roles[userID]
	if !ok {
		return account.Role{}, errs.NewObjectNotFoundError("role", userID.String())
	}
	return role, nil
}

// snapshotLocked copies the maps so Rollback can restore them. Stored
// aggregates are never mutated in place, so shallow copies are enough.
func (s *Store) snapshotLocked() storeSnapshot {
	orders := make(map[kernel.UUID]*order.Order, len(s.orders))
	for id, o := range s.orders {
		orders[id] = o
	}
	users := make(map[kernel.UUID]account.User, len(s.users))
	for id, u := range s.users {
		users[id] = u
	}
	roles := make(map[kernel.UUID]account.Role, len(s.roles))
	for id, r := range s.roles {
		roles[id] = r
	}
	return storeSnapshot{orders: orders, users: users, roles: roles}
}

func (s *Store) restoreLocked(snap storeSnapshot) {
	s.orders = snap.orders
	s.users = snap.users
	s.roles = snap.roles
}

type storeSnapshot struct {
	orders map[kernel.UUID]*order.Order
	users  map[kernel.UUID]account.User
	roles  map[kernel.UUID]account.Role
}

// Add persists a new order aggregate.
func (s *Store) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addOrderLocked(aggregate)
}

// Update persists changes to an existing order. Never upserts.
func (s *Store) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateOrderLocked(aggregate)
}

// Get retrieves an order by its order number.
func (s *Store) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrderLocked(id)
}

// GetByCustomer retrieves every order of the customer, oldest first.
func (s *Store) GetByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ordersWhereLocked(func(o *order.Order) bool {
		return o.IsOwnedBy(customerID)
	})
}

// GetByStatus retrieves every order in the given status, oldest first.
func (s *Store) GetByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ordersWhereLocked(func(o *order.Order) bool {
		return o.Status() == status
	})
}
