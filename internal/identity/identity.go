// Package identity carries the authenticated actor through the request path.
package identity

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Identity is either an authenticated user or anonymous. Operations that
// require a logged-in actor take an Identity parameter instead of reading
// ambient state, so the precondition is visible in the signature.
type Identity struct {
	userID        snowflake.ID
	authenticated bool
}

// Authenticated returns an identity for the given user ID.
func Authenticated(userID snowflake.ID) Identity {
	return Identity{userID: userID, authenticated: userID != 0}
}

// Anonymous returns the unauthenticated identity.
func Anonymous() Identity {
	return Identity{}
}

// UserID returns the actor's user ID and whether the identity is authenticated.
func (i Identity) UserID() (snowflake.ID, bool) {
	return i.userID, i.authenticated
}

// IsAnonymous reports whether no user is attached.
func (i Identity) IsAnonymous() bool {
	return !i.authenticated
}

// ContextKey is the request context key for the actor identity.
type ContextKey struct{}

// WithIdentity stores the identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ContextKey{}, id)
}

// FromContext returns the identity from context, defaulting to anonymous.
func FromContext(ctx context.Context) Identity {
	if ctx == nil {
		return Anonymous()
	}
	if id, ok := ctx.Value(ContextKey{}).(Identity); ok {
		return id
	}
	return Anonymous()
}
