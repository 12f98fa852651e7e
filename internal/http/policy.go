package http

import (
	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
)

// Operation names declared in the authorization policy.
const (
	OperationMe                  = "me"
	OperationTokenRefresh        = "token_refresh"
	OperationAccountList         = "account_list"
	OperationAccountGet          = "account_get"
	OperationAccountCreate       = "account_create"
	OperationAccountUpdateStatus = "account_update_status"
	OperationAccountUpdateRole   = "account_update_role"
)

// NewPolicy declares the roles each routed operation requires. Operations with no roles
// are open to any active identity.
func NewPolicy() *authDomain.Policy {
	admin := []accountDomain.Role{accountDomain.RoleAdmin}

	return authDomain.NewPolicy(map[string][]accountDomain.Role{
		OperationMe:                  nil,
		OperationTokenRefresh:        nil,
		OperationAccountList:         admin,
		OperationAccountGet:          admin,
		OperationAccountCreate:       admin,
		OperationAccountUpdateStatus: admin,
		OperationAccountUpdateRole:   admin,
	})
}
