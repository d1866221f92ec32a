// Package service implements identity resolution against the external
// identity provider. A bearer credential is exchanged for the provider's
// stable user identifier; nothing about the user is stored locally.
package service

import (
	"context"
)

// Resolver exchanges a bearer credential for a stable opaque user identifier.
type Resolver interface {
	// Resolve issues one outbound call to the identity provider's profile
	// endpoint with the credential attached and returns the provider's
	// identifier for it. Any non-success response, transport failure, or
	// malformed response body yields errors.ErrUnauthorized; provider error
	// detail is not propagated to callers.
	//
	// There is no caching and no retry: one invocation, one outbound call.
	Resolve(ctx context.Context, credential string) (string, error)
}
