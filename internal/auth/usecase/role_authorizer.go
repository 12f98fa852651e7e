package usecase

import (
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
)

type roleAuthorizer struct{}

// NewRoleAuthorizer creates a RoleAuthorizer. Matching is exact with no role hierarchy.
func NewRoleAuthorizer() RoleAuthorizer {
	return &roleAuthorizer{}
}

// Authorize never allows without an identity or with an empty required set.
func (a *roleAuthorizer) Authorize(
	identity *authDomain.IdentityContext,
	required authDomain.RoleSet,
) authDomain.Decision {
	if identity == nil {
		return authDomain.Deny(required, "")
	}
	if required.Contains(identity.Role) {
		return authDomain.Allow(required, identity.Role)
	}
	return authDomain.Deny(required, identity.Role)
}
