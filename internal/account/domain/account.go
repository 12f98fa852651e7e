// Package domain defines marketplace accounts: who may sign in, with which role, and
// whether the account is currently usable.
package domain

import (
	"slices"
	"time"

	"github.com/linguahub/linguahub/internal/errors"
)

// Role is the single marketplace role an account holds.
type Role string

const (
	// RoleStudent books and attends lessons.
	RoleStudent Role = "student"

	// RoleTeacher offers lessons.
	RoleTeacher Role = "teacher"

	// RoleAdmin operates the marketplace.
	RoleAdmin Role = "admin"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleStudent, RoleTeacher, RoleAdmin}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	return slices.Contains(Roles, r)
}

// Status is the lifecycle state of an account.
type Status string

const (
	StatusActive              Status = "active"
	StatusSuspended           Status = "suspended"
	StatusBanned              Status = "banned"
	StatusPendingVerification Status = "pending_verification"
	StatusDeleted             Status = "deleted"
)

// Statuses lists every valid status.
var Statuses = []Status{
	StatusActive,
	StatusSuspended,
	StatusBanned,
	StatusPendingVerification,
	StatusDeleted,
}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// Account is the persisted marketplace account. The request gate only reads
// ID, Role and Status; the remaining fields belong to account management and login.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string //nolint:gosec // argon2id hash, never the plaintext
	Role         Role
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the account may authenticate.
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

// CreateAccountInput holds the fields needed to register an account.
type CreateAccountInput struct {
	Email    string
	Name     string
	Password string //nolint:gosec // plaintext only in transit to the hasher
	Role     Role
	Status   Status
}

// ListAccountsFilter narrows an account listing.
type ListAccountsFilter struct {
	Role   Role
	Status Status
	Offset int
	Limit  int
}

// Account errors.
var (
	// ErrAccountNotFound indicates no account exists with the given id or email.
	ErrAccountNotFound = errors.Wrap(errors.ErrNotFound, "account not found")

	// ErrAccountAlreadyExists indicates the email is already registered.
	ErrAccountAlreadyExists = errors.Wrap(errors.ErrConflict, "account already exists")

	// ErrInvalidRole indicates a role outside the enumerated set.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")

	// ErrInvalidStatus indicates a status outside the enumerated set.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "invalid status")
)
