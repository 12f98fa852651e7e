package http

import (
	"context"

	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
)

// identityKey is the context key for the request's IdentityContext.
type identityKey struct{}

// WithIdentity stores the resolved identity in the context. The gate middleware calls it
// once per request after the request is forwarded.
func WithIdentity(ctx context.Context, identity *authDomain.IdentityContext) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity returns the identity attached by the gate middleware, or (nil, false) when
// the request did not pass through it.
func GetIdentity(ctx context.Context) (*authDomain.IdentityContext, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.IdentityContext)
	return identity, ok && identity != nil
}
