package repository

import (
	"context"
	"slices"
	"sync"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
)

// MemoryAccountRepository keeps accounts in process memory. It backs the "memory"
// driver for local development and tests; data is lost on restart.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]accountDomain.Account
}

// NewMemoryAccountRepository creates an empty in-memory repository.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{accounts: make(map[string]accountDomain.Account)}
}

// Create stores a copy of account.
func (r *MemoryAccountRepository) Create(ctx context.Context, account *accountDomain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return accountDomain.ErrAccountAlreadyExists
		}
	}
	r.accounts[account.ID] = *account
	return nil
}

// Update replaces the stored account with the same id.
func (r *MemoryAccountRepository) Update(ctx context.Context, account *accountDomain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.accounts[account.ID]
	if !ok {
		return accountDomain.ErrAccountNotFound
	}

	updated := *account
	updated.Email = existing.Email
	updated.CreatedAt = existing.CreatedAt
	r.accounts[account.ID] = updated
	return nil
}

// GetByID returns a copy of the account.
func (r *MemoryAccountRepository) GetByID(ctx context.Context, id string) (*accountDomain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, accountDomain.ErrAccountNotFound
	}
	return &account, nil
}

// GetByEmail returns a copy of the account with email.
func (r *MemoryAccountRepository) GetByEmail(ctx context.Context, email string) (*accountDomain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Email == email {
			return &account, nil
		}
	}
	return nil, accountDomain.ErrAccountNotFound
}

// List returns accounts matching filter, newest first.
func (r *MemoryAccountRepository) List(
	ctx context.Context,
	filter accountDomain.ListAccountsFilter,
) ([]*accountDomain.Account, error) {
	r.mu.RLock()
	matched := make([]*accountDomain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		if filter.Role != "" && account.Role != filter.Role {
			continue
		}
		if filter.Status != "" && account.Status != filter.Status {
			continue
		}
		matched = append(matched, &account)
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, func(a, b *accountDomain.Account) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})

	if filter.Offset >= len(matched) {
		return []*accountDomain.Account{}, nil
	}
	end := len(matched)
	if filter.Limit > 0 && filter.Offset+filter.Limit < end {
		end = filter.Offset + filter.Limit
	}
	return matched[filter.Offset:end], nil
}
