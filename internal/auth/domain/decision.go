package domain

import (
	"fmt"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
)

// Decision is the outcome of a role check. A denial is an ordinary result, not an error.
type Decision struct {
	Allowed  bool
	Required RoleSet
	Actual   accountDomain.Role
}

// Allow builds an allowing decision.
func Allow(required RoleSet, actual accountDomain.Role) Decision {
	return Decision{Allowed: true, Required: required, Actual: actual}
}

// Deny builds a denying decision.
func Deny(required RoleSet, actual accountDomain.Role) Decision {
	return Decision{Allowed: false, Required: required, Actual: actual}
}

// Message returns a caller-facing explanation naming the required and actual roles.
// Role names are not secret.
func (d Decision) Message() string {
	if d.Allowed {
		return fmt.Sprintf("role %s is permitted", d.Actual)
	}
	actual := string(d.Actual)
	if actual == "" {
		actual = "none"
	}
	if d.Required.IsEmpty() {
		return fmt.Sprintf("This operation is not available to any role; your role is %s", actual)
	}
	return fmt.Sprintf("This operation requires role %s; your role is %s", d.Required.String(), actual)
}
