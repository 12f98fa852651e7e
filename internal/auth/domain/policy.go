package domain

import (
	"maps"
	"slices"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
)

// Policy is the static mapping from operation name to the roles allowed to invoke it.
// It is built once at start-up and never mutated; lookups are safe for concurrent use.
type Policy struct {
	operations map[string]RoleSet
}

// NewPolicy copies the declarations into an immutable Policy. Declaring an operation
// with no roles means any authenticated identity may invoke it.
func NewPolicy(declarations map[string][]accountDomain.Role) *Policy {
	operations := make(map[string]RoleSet, len(declarations))
	for operation, roles := range declarations {
		operations[operation] = NewRoleSet(roles...)
	}
	return &Policy{operations: operations}
}

// Lookup returns a copy of the roles declared for operation and whether the operation
// was declared at all. Undeclared operations have no role requirement.
func (p *Policy) Lookup(operation string) (RoleSet, bool) {
	if p == nil {
		return nil, false
	}
	roles, ok := p.operations[operation]
	if !ok {
		return nil, false
	}
	return slices.Clone(roles), true
}

// Operations returns the declared operation names in sorted order.
func (p *Policy) Operations() []string {
	if p == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(p.operations))
}
