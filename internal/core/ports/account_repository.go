// Package ports defines repository interfaces for the point-of-sale core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user identities.
type UserRepository interface {
	// Add persists a new user record.
	Add(ctx context.Context, user account.User) error

	// Get retrieves a user by its unique identifier.
	// Fails with ObjectNotFoundError when the id is absent.
	Get(ctx context.Context, id kernel.UUID) (account.User, error)

	// GetByTaxID retrieves a user by its tax identification code.
	// Fails with ObjectNotFoundError when no user carries it.
	GetByTaxID(ctx context.Context, taxID string) (account.User, error)
}

// RoleRepository defines the persistence contract for the single concrete
// role each user carries.
type RoleRepository interface {
	// Add persists the role record for the role's user, replacing any
	// previous one. A user has exactly one concrete role at a time.
	Add(ctx context.Context, role account.Role) error

	// GetByUser retrieves the role of the given user.
	// Fails with ObjectNotFoundError when the user has no role record.
	GetByUser(ctx context.Context, userID kernel.UUID) (account.Role, error)
}
