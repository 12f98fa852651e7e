// Package usecase implements account management: registering accounts and changing
// their status or role. Status and role changes are read by the request gate on the
// next request, so no session state needs revoking here.
package usecase

import (
	"context"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
)

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	Create(ctx context.Context, account *accountDomain.Account) error
	Update(ctx context.Context, account *accountDomain.Account) error
	GetByID(ctx context.Context, id string) (*accountDomain.Account, error)
	GetByEmail(ctx context.Context, email string) (*accountDomain.Account, error)
	List(ctx context.Context, filter accountDomain.ListAccountsFilter) ([]*accountDomain.Account, error)
}

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	HashPassword(plainPassword string) (string, error)
}

// AccountUseCase defines the interface for account management operations.
type AccountUseCase interface {
	// Create validates input, hashes the password and stores a new account. Email is
	// trimmed and lowercased; an empty status defaults to active.
	Create(ctx context.Context, input *accountDomain.CreateAccountInput) (*accountDomain.Account, error)

	Get(ctx context.Context, id string) (*accountDomain.Account, error)

	List(ctx context.Context, filter accountDomain.ListAccountsFilter) ([]*accountDomain.Account, error)

	UpdateStatus(ctx context.Context, id string, status accountDomain.Status) (*accountDomain.Account, error)

	UpdateRole(ctx context.Context, id string, role accountDomain.Role) (*accountDomain.Account, error)
}
