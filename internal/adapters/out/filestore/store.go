package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/order"
	"kebabhouse/internal/pkg/errs"
)

// Store is a JSON-document-backed implementation of the persistence ports.
// One mutex guards the in-memory document; every committed mutation is
// written back to disk before the lock is released.
type Store struct {
	mu   sync.Mutex
	path string
	doc  document
}

// NewStore loads the document at path, creating an empty one when the file
// does not exist yet. The parent directory is created as needed.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errs.NewDAOError("create data directory", err)
	}

	store := &Store{path: path, doc: newDocument()}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, errs.NewDAOError("load document", err)
	}

	if err := json.Unmarshal(raw, &store.doc); err != nil {
		return nil, errs.NewDAOError("decode document", err)
	}
	if store.doc.Orders == nil {
		store.doc.Orders = make(map[string]orderDoc)
	}
	if store.doc.Users == nil {
		store.doc.Users = make(map[string]userDoc)
	}
	if store.doc.Roles == nil {
		store.doc.Roles = make(map[string]roleDoc)
	}
	return store, nil
}

// saveLocked writes the document to a sibling temp file and renames it over
// the target, so readers never observe a half-written document.
func (s *Store) saveLocked() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return errs.NewDAOError("encode document", err)
	}

	tmp := fmt.Sprintf("%s.tmp", s.path)
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errs.NewDAOError("write document", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errs.NewDAOError("replace document", err)
	}
	return nil
}

// unlocked primitives, called with s.mu held

func (s *Store) addOrderLocked(aggregate *order.Order) error {
	key := aggregate.ID().String()
	if _, exists := s.doc.Orders[key]; exists {
		return errs.NewValueIsInvalidError("orderId")
	}
	s.doc.Orders[key] = orderToDoc(aggregate)
	return nil
}

func (s *Store) updateOrderLocked(aggregate *order.Order) error {
	key := aggregate.ID().String()
	if _, exists := s.doc.Orders[key]; !exists {
		return errs.NewObjectNotFoundError("order", key)
	}
	s.doc.Orders[key] = orderToDoc(aggregate)
	return nil
}

func (s *Store) getOrderLocked(id kernel.UUID) (*order.Order, error) {
	doc, ok := s.doc.Orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return orderFromDoc(doc)
}

func (s *Store) ordersWhereLocked(keep func(orderDoc) bool) ([]*order.Order, error) {
	kept := make([]orderDoc, 0)
	for _, doc := range s.doc.Orders {
		if keep(doc) {
			kept = append(kept, doc)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].CreatedAt.Before(kept[j].CreatedAt)
	})

	found := make([]*order.Order, 0, len(kept))
	for _, doc := range kept {
		restored, err := orderFromDoc(doc)
		if err != nil {
			return nil, err
		}
		found = append(found, restored)
	}
	return found, nil
}

func (s *Store) addUserLocked(user account.User) {
	s.doc.Users[user.ID().String()] = userToDoc(user)
}

func (s *Store) getUserLocked(id kernel.UUID) (account.User, error) {
	doc, ok := s.doc.Users[id.String()]
	if !ok {
		return account.User{}, errs.NewObjectNotFoundError("user", id.String())
	}
	return userFromDoc(doc)
}

func (s *Store) getUserByTaxIDLocked(taxID string) (account.User, error) {
	for _, doc := range s.doc.Users {
		if doc.TaxID == taxID {
			return userFromDoc(doc)
		}
	}
	return account.User{}, errs.NewObjectNotFoundError("user", taxID)
}

func (s *Store) addRoleLocked(role account.Role) {
	s.doc.Roles[role.User().ID().String()] = roleToDoc(role)
}

func (s *Store) getRoleByUserLocked(userID kernel.UUID) (account.Role, error) {
	doc, ok := s.doc.Roles[userID.String()]
	if !ok {
		return account.Role{}, errs.NewObjectNotFoundError("role", userID.String())
	}

	user, err := s.getUserLocked(userID)
	if err != nil {
		return account.Role{}, err
	}
	return roleFromDoc(doc, user)
}

// Add persists a new order aggregate.
func (s *Store) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.addOrderLocked(aggregate); err != nil {
		return err
	}
	return s.saveLocked()
}

// Update persists changes to an existing order. Never upserts.
func (s *Store) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.updateOrderLocked(aggregate); err != nil {
		return err
	}
	return s.saveLocked()
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
	key := customerID.String()
	return s.ordersWhereLocked(func(doc orderDoc) bool {
		return doc.CustomerID == key
	})
}

// GetByStatus retrieves every order in the given status, oldest first.
func (s *Store) GetByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	name := status.String()
	return s.ordersWhereLocked(func(doc orderDoc) bool {
		return doc.Status == name
	})
}
