// Package auth decides whether a caller may invoke administrative
// mutations. Role assignments live in the persisted store; the absence of
// an assignment row makes a user a plain customer, never an error.
package auth

import (
	"context"
	"errors"

	"carrybee/internal/core/domain/model/account"
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/ports"
)

// ErrIdentityUnresolved is returned when an access decision was requested
// before the caller's identity finished resolving. Pending resolution is
// never proof of non-admin status, so the decision is refused rather than
// guessed.
var ErrIdentityUnresolved = errors.New("caller identity is not resolved yet")

// Resolution is the three-valued outcome of a role lookup. Unresolved is a
// real state, distinct from "resolved as customer": a caller whose session
// is still resolving must not be treated as a non-admin.
type Resolution int

const (
	// ResolutionUnresolved means the caller's identity or role is not known yet.
	ResolutionUnresolved Resolution = iota

	// ResolutionCustomer means the caller resolved with customer privileges.
	ResolutionCustomer

	// ResolutionAdmin means the caller resolved with admin privileges.
	ResolutionAdmin
)

// String returns the resolution name for logs.
func (r Resolution) String() string {
	switch r {
	case ResolutionCustomer:
		return "customer"
	case ResolutionAdmin:
		return "admin"
	default:
		return "unresolved"
	}
}

// Role maps a terminal resolution back to the account role. Unresolved has
// no role.
func (r Resolution) Role() account.Role {
	switch r {
	case ResolutionCustomer:
		return account.RoleCustomer
	case ResolutionAdmin:
		return account.RoleAdmin
	default:
		return account.RoleUnknown
	}
}

// SessionProvider supplies the current caller's identity. Resolution may
// complete asynchronously; Resolved returns a channel that is closed once
// the identity outcome is known, whatever that outcome is.
type SessionProvider interface {
	Resolved() <-chan struct{}
	CurrentUserID() (kernel.UUID, bool)
}

// Gate answers access questions for admin-surface mutations.
//
// Example:
//
//	gate := auth.NewGate(roleRepo)
//	if err := gate.RequireAdmin(ctx, userID); err != nil {
//	    return err // account.ErrForbidden, mutation not attempted
//	}
type Gate struct {
	roles ports.RoleRepository
}

// NewGate creates a gate backed by the given role lookup.
func NewGate(roles ports.RoleRepository) Gate {
	return Gate{roles: roles}
}

// ResolveRole resolves the caller's privileges. A zero user ID resolves to
// ResolutionUnresolved without touching the store; a user with no role
// assignment resolves to ResolutionCustomer.
func (g Gate) ResolveRole(ctx context.Context, userID kernel.UUID) (Resolution, error) {
	if err := userID.Validate(); err != nil {
		return ResolutionUnresolved, nil
	}

	role, err := g.roles.GetRole(ctx, userID)
	if err != nil {
		return ResolutionUnresolved, err
	}

	if role.IsAdmin() {
		return ResolutionAdmin, nil
	}
	return ResolutionCustomer, nil
}

// RequireAdmin permits the mutation only for a caller that resolved as
// admin. An unresolved identity is ErrIdentityUnresolved, not Forbidden;
// a resolved non-admin is account.ErrForbidden.
func (g Gate) RequireAdmin(ctx context.Context, userID kernel.UUID) error {
	resolution, err := g.ResolveRole(ctx, userID)
	if err != nil {
		return err
	}

	switch resolution {
	case ResolutionAdmin:
		return nil
	case ResolutionCustomer:
		return account.ErrForbidden
	default:
		return ErrIdentityUnresolved
	}
}

// AwaitActor blocks until the session finishes resolving, then resolves the
// caller's role. Returns the caller's ID with their resolution, or
// ResolutionUnresolved with ctx.Err() when the context expires first.
// A session that resolved without a signed-in user yields a zero ID and
// ResolutionUnresolved with no error.
func (g Gate) AwaitActor(ctx context.Context, session SessionProvider) (kernel.UUID, Resolution, error) {
	select {
	case <-ctx.Done():
		return kernel.UUID{}, ResolutionUnresolved, ctx.Err()
	case <-session.Resolved():
	}

	userID, ok := session.CurrentUserID()
	if !ok {
		return kernel.UUID{}, ResolutionUnresolved, nil
	}

	resolution, err := g.ResolveRole(ctx, userID)
	return userID, resolution, err
}
