// Package roles implements the lazy, memoizing role lookup used by the order
// facade. The first resolution for a user goes through the persistence
// gateway; subsequent ones are served from an in-memory cache without a
// storage round-trip.
//
// The cache is populated on demand and never evicted on its own. Staleness
// against administrative role changes is bounded only when the optional
// refresh job is configured; see Clear.
package roles

import (
	"context"
	"sync"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/ports"
)

// Provider resolves the single concrete role of a user, caching results for
// the lifetime of the process.
type Provider struct {
	repo ports.RoleRepository

	mu    sync.Mutex
	cache map[kernel.UUID]account.Role
}

// NewProvider creates a Provider over the given role repository with an
// empty cache.
func NewProvider(repo ports.RoleRepository) *Provider {
	return &Provider{
		repo:  repo,
		cache: make(map[kernel.UUID]account.Role),
	}
}

// Resolve returns the user's role, loading it through the repository on the
// first call and from the cache afterwards.
//
// The repository call runs outside the cache lock, so a slow storage backend
// never blocks resolutions for other users. Two concurrent first lookups for
// the same user may both hit storage; the second write wins, which is
// harmless since both loaded the same record.
func (p *Provider) Resolve(ctx context.Context, user account.User) (account.Role, error) {
	if err := user.Validate(); err != nil {
		return account.Role{}, err
	}

	p.mu.Lock()
	if role, ok := p.cache[user.ID()]; ok {
		p.mu.Unlock()
		return role, nil
	}
	p.mu.Unlock()

	role, err := p.repo.GetByUser(ctx, user.ID())
	if err != nil {
		return account.Role{}, err
	}

	p.mu.Lock()
	p.cache[user.ID()] = role
	p.mu.Unlock()
	return role, nil
}

// Invalidate drops the cached role of one user, forcing the next Resolve to
// reload it from storage.
func (p *Provider) Invalidate(userID kernel.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.cache, userID)
}

// Clear empties the whole cache. The optional refresh job calls this
// periodically so administrative role changes surface without a restart.
func (p *Provider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = make(map[kernel.UUID]account.Role)
}

// CachedCount returns the number of cached roles. Used by the refresh job's
// logging.
func (p *Provider) CachedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cache)
}
