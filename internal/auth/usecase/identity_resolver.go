package usecase

import (
	"context"
	"errors"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
	apperrors "github.com/linguahub/linguahub/internal/errors"
)

type identityResolver struct {
	store AccountStore
}

// NewIdentityResolver creates an IdentityResolver reading from store.
func NewIdentityResolver(store AccountStore) IdentityResolver {
	return &identityResolver{store: store}
}

// Resolve applies account-status gating. Every non-active status is rejected the same way.
func (r *identityResolver) Resolve(ctx context.Context, subjectID string) (*authDomain.IdentityContext, error) {
	account, err := r.store.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, accountDomain.ErrAccountNotFound) {
			return nil, authDomain.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(err, "failed to read account")
	}
	if account == nil {
		return nil, authDomain.ErrAccountNotFound
	}

	if !account.IsActive() {
		return nil, authDomain.ErrAccountNotActive
	}

	return &authDomain.IdentityContext{
		ID:   account.ID,
		Role: account.Role,
	}, nil
}
