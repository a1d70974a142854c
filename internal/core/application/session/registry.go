// Package session implements the token registry binding authenticated users
// to their current interaction. The registry is process-wide shared state,
// explicitly constructed and injected by the composition root; all access is
// serialized through a single lock.
package session

import (
	"sync"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// Session binds an authenticated user to an opaque token and records which
// front end opened it.
type Session struct {
	user         account.User
	token        string
	frontEndKind string
}

// User returns the authenticated user.
func (s Session) User() account.User { return s.user }

// Token returns the opaque session token.
func (s Session) Token() string { return s.token }

// FrontEndKind returns the front end that opened the session.
func (s Session) FrontEndKind() string { return s.frontEndKind }

// Registry maps opaque per-user tokens to authenticated identities. Sessions
// are created lazily on first lookup; at most one live session exists per
// user at a time. The registry starts empty and entries leave it only through
// Logout.
//
// Lookups and mutations are guarded by one mutex. The registry never performs
// I/O, so holding the lock is cheap; callers must not reach the persistence
// gateway while inside a registry call.
type Registry struct {
	mu           sync.Mutex
	frontEndKind string
	byUser       map[kernel.UUID]*Session
	byToken      map[string]*Session
}

// NewRegistry creates an empty registry. frontEndKind is recorded on every
// session it creates.
func NewRegistry(frontEndKind string) *Registry {
	return &Registry{
		frontEndKind: frontEndKind,
		byUser:       make(map[kernel.UUID]*Session),
		byToken:      make(map[string]*Session),
	}
}

// ResolveOrCreateToken returns the token of the user's live session, creating
// the session first when none exists. Idempotent per user for the life of the
// session: two calls in sequence return the identical token.
func (r *Registry) ResolveOrCreateToken(user account.User) (string, error) {
	if err := user.Validate(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byUser[user.ID()]; ok {
		return existing.token, nil
	}

	s := &Session{
		user:         user,
		token:        uuid.NewString(),
		frontEndKind: r.frontEndKind,
	}
	r.byUser[user.ID()] = s
	r.byToken[s.token] = s
	return s.token, nil
}

// UserForToken looks up the user behind a token. Pure lookup, no creation.
// Absence is not an error; it signals "not authenticated".
func (r *Registry) UserForToken(token string) (account.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byToken[token]
	if !ok {
		return account.User{}, false
	}
	return s.user, true
}

// SessionForUser returns the user's live session, if any.
func (r *Registry) SessionForUser(user account.User) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byUser[user.ID()]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

// Logout removes the user's session. Subsequent UserForToken calls for its
// token return false. Logout without a live session is a no-op, never an
// error.
func (r *Registry) Logout(user account.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byUser[user.ID()]
	if !ok {
		return
	}
	delete(r.byUser, user.ID())
	delete(r.byToken, s.token)
}
