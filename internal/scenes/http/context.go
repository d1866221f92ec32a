// Package http provides HTTP handlers and middleware for scene sync operations.
package http

import (
	"context"
)

// identityKey is a context key type for storing resolved identities.
type identityKey struct{}

// WithIdentity stores a resolved identity in the context.
// This is typically called by the authentication middleware after the bearer
// credential has been resolved to a stable identity.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the resolved identity from the context.
// Returns (identity, true) if present, or ("", false) if no identity was set.
func GetIdentity(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityKey{}).(string)
	return identity, ok
}
