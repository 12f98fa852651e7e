package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
	authService "github.com/linguahub/linguahub/internal/auth/service"
)

type loginUseCase struct {
	accounts        AccountFinder
	passwordService authService.PasswordService
	codec           authService.TokenCodec
	tokenTTL        time.Duration

	// decoyHash is compared against for unknown emails so both failures cost one hash check.
	decoyOnce sync.Once
	decoyHash string
}

const decoyPassword = "linguahub-unknown-account" //nolint:gosec // never stored

// NewLoginUseCase creates a LoginUseCase issuing tokens valid for tokenTTL.
func NewLoginUseCase(
	accounts AccountFinder,
	passwordService authService.PasswordService,
	codec authService.TokenCodec,
	tokenTTL time.Duration,
) LoginUseCase {
	return &loginUseCase{
		accounts:        accounts,
		passwordService: passwordService,
		codec:           codec,
		tokenTTL:        tokenTTL,
	}
}

// Login checks the password before the account status so a caller without the password
// learns nothing about the account.
func (l *loginUseCase) Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.IssuedToken, error) {
	account, err := l.accounts.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, accountDomain.ErrAccountNotFound) {
			l.compareDecoy(input.Password)
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !l.passwordService.ComparePassword(input.Password, account.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	if !account.IsActive() {
		return nil, authDomain.ErrAccountNotActive
	}

	return l.issue(account.ID)
}

func (l *loginUseCase) compareDecoy(password string) {
	l.decoyOnce.Do(func() {
		if hash, err := l.passwordService.HashPassword(decoyPassword); err == nil {
			l.decoyHash = hash
		}
	})
	if l.decoyHash != "" {
		_ = l.passwordService.ComparePassword(password, l.decoyHash)
	}
}

// Refresh issues a new token for identity.
func (l *loginUseCase) Refresh(
	ctx context.Context,
	identity *authDomain.IdentityContext,
) (*authDomain.IssuedToken, error) {
	if identity == nil {
		return nil, authDomain.ErrInvalidCredentials
	}
	return l.issue(identity.ID)
}

func (l *loginUseCase) issue(subjectID string) (*authDomain.IssuedToken, error) {
	token, expiresAt, err := l.codec.Encode(subjectID, l.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &authDomain.IssuedToken{
		Token:     token,
		TokenType: authDomain.TokenType,
		ExpiresAt: expiresAt,
	}, nil
}
