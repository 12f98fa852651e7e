// Package usecase implements the request authentication pipeline: identity resolution,
// role authorization, the request gate that composes them, and the login flow that
// mints credentials.
package usecase

import (
	"context"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
)

// AccountStore is the read-only account lookup the identity resolver depends on.
type AccountStore interface {
	// GetByID returns the account or accountDomain.ErrAccountNotFound.
	GetByID(ctx context.Context, id string) (*accountDomain.Account, error)
}

// AccountFinder looks accounts up by email for the login flow.
type AccountFinder interface {
	// GetByEmail returns the account or accountDomain.ErrAccountNotFound.
	GetByEmail(ctx context.Context, email string) (*accountDomain.Account, error)
}

// IdentityResolver turns a verified subject id into an IdentityContext.
type IdentityResolver interface {
	// Resolve reads the account once and never caches it. Returns ErrAccountNotFound or
	// ErrAccountNotActive for unusable accounts; store failures are returned wrapped.
	Resolve(ctx context.Context, subjectID string) (*authDomain.IdentityContext, error)
}

// RoleAuthorizer decides whether an identity satisfies a role requirement.
type RoleAuthorizer interface {
	// Authorize allows iff the identity's role is in required. An empty set denies.
	Authorize(identity *authDomain.IdentityContext, required authDomain.RoleSet) authDomain.Decision
}

// Gate runs the per-request authentication and authorization state machine.
type Gate interface {
	// Evaluate checks the raw Authorization header value against required. A nil or
	// empty required set means no role requirement, not deny-all: any active identity
	// is forwarded. Use Policy declarations to restrict an operation.
	Evaluate(ctx context.Context, authorizationHeader string, required authDomain.RoleSet) *authDomain.GateResult
}

// LoginUseCase mints credentials.
type LoginUseCase interface {
	// Login verifies email and password and issues a token. Unknown emails and wrong
	// passwords both return ErrInvalidCredentials; accounts that are not active return
	// ErrAccountNotActive.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.IssuedToken, error)

	// Refresh issues a new token for an identity the gate has already forwarded.
	Refresh(ctx context.Context, identity *authDomain.IdentityContext) (*authDomain.IssuedToken, error)
}
