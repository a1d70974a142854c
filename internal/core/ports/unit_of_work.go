package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and serializes state transitions on the
// same order: the read-check-write of a transition runs inside one unit of
// work, so no dirty read of status can slip between the capability check and
// the commit.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Rollback after a successful commit is a no-op.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// RoleRepository returns a RoleRepository bound to the current transaction.
	RoleRepository() RoleRepository
}
