package domain

import "context"

// Identity is the principal resolved by the authentication middleware.
// It is immutable for the lifetime of the request and travels in the
// request context, never in process-wide state.
type Identity struct {
	Username string
	Role     string
}

type identityKey struct{}

// ContextWithIdentity returns a copy of ctx carrying id.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext extracts the identity attached by the authentication
// middleware. ok is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
