// Package domain defines the request authentication and authorization model: signed
// credentials, the identity context attached to a request, role requirements and the
// decisions and rejections produced by the request gate.
package domain

import (
	"slices"
	"strings"
	"time"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
)

// Credential is the verified content of an access token. It is only ever built from a
// token whose signature and expiry were checked.
type Credential struct {
	ID        string    // Token id ("jti")
	SubjectID string    // Account id ("sub")
	IssuedAt  time.Time // "iat"
	ExpiresAt time.Time // "exp"
}

// IdentityContext is the per-request identity derived from the account at resolution time.
type IdentityContext struct {
	ID   string
	Role accountDomain.Role
}

// RoleSet is a set of roles an operation accepts.
type RoleSet []accountDomain.Role

// NewRoleSet builds a RoleSet, dropping duplicates while keeping the first-seen order.
func NewRoleSet(roles ...accountDomain.Role) RoleSet {
	set := make(RoleSet, 0, len(roles))
	for _, r := range roles {
		if !slices.Contains(set, r) {
			set = append(set, r)
		}
	}
	return set
}

// Contains reports whether role is a member of the set. Matching is exact.
func (s RoleSet) Contains(role accountDomain.Role) bool {
	return slices.Contains(s, role)
}

// IsEmpty reports whether the set has no members.
func (s RoleSet) IsEmpty() bool {
	return len(s) == 0
}

// String renders the set as a comma separated list.
func (s RoleSet) String() string {
	names := make([]string, len(s))
	for i, r := range s {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
