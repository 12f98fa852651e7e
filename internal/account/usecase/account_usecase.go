package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	"github.com/linguahub/linguahub/internal/database"
	apperrors "github.com/linguahub/linguahub/internal/errors"
	appValidation "github.com/linguahub/linguahub/internal/validation"
)

type accountUseCase struct {
	txManager   database.TxManager
	accountRepo AccountRepository
	hasher      PasswordHasher
	now         func() time.Time
}

// NewAccountUseCase creates an AccountUseCase.
func NewAccountUseCase(
	txManager database.TxManager,
	accountRepo AccountRepository,
	hasher PasswordHasher,
) AccountUseCase {
	return &accountUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func validateCreateAccountInput(input *accountDomain.CreateAccountInput) error {
	role := string(input.Role)
	status := string(input.Status)
	err := validation.Errors{
		"email": validation.Validate(input.Email,
			validation.Required.Error("email is required"),
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		"name": validation.Validate(input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		"password": validation.Validate(input.Password,
			validation.Required.Error("password is required"),
			validation.Length(0, 128).Error("password must be at most 128 characters"),
			appValidation.DefaultPasswordStrength,
		),
		"role": validation.Validate(role,
			validation.Required.Error("role is required"),
			appValidation.AccountRole,
		),
		"status": validation.Validate(status, appValidation.AccountStatus),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

func (a *accountUseCase) Create(
	ctx context.Context,
	input *accountDomain.CreateAccountInput,
) (*accountDomain.Account, error) {
	normalized := *input
	normalized.Email = strings.ToLower(strings.TrimSpace(input.Email))
	normalized.Name = strings.TrimSpace(input.Name)
	if normalized.Status == "" {
		normalized.Status = accountDomain.StatusActive
	}

	if err := validateCreateAccountInput(&normalized); err != nil {
		return nil, err
	}

	hash, err := a.hasher.HashPassword(normalized.Password)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate account id")
	}

	now := a.now()
	account := &accountDomain.Account{
		ID:           id.String(),
		Email:        normalized.Email,
		Name:         normalized.Name,
		PasswordHash: hash,
		Role:         normalized.Role,
		Status:       normalized.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := a.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (a *accountUseCase) Get(ctx context.Context, id string) (*accountDomain.Account, error) {
	return a.accountRepo.GetByID(ctx, id)
}

func (a *accountUseCase) List(
	ctx context.Context,
	filter accountDomain.ListAccountsFilter,
) ([]*accountDomain.Account, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, accountDomain.ErrInvalidRole
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, accountDomain.ErrInvalidStatus
	}
	return a.accountRepo.List(ctx, filter)
}

func (a *accountUseCase) UpdateStatus(
	ctx context.Context,
	id string,
	status accountDomain.Status,
) (*accountDomain.Account, error) {
	if !status.Valid() {
		return nil, accountDomain.ErrInvalidStatus
	}
	return a.update(ctx, id, func(account *accountDomain.Account) {
		account.Status = status
	})
}

func (a *accountUseCase) UpdateRole(
	ctx context.Context,
	id string,
	role accountDomain.Role,
) (*accountDomain.Account, error) {
	if !role.Valid() {
		return nil, accountDomain.ErrInvalidRole
	}
	return a.update(ctx, id, func(account *accountDomain.Account) {
		account.Role = role
	})
}

// update reads and writes the account inside one transaction.
func (a *accountUseCase) update(
	ctx context.Context,
	id string,
	mutate func(account *accountDomain.Account),
) (*accountDomain.Account, error) {
	var updated *accountDomain.Account

	err := a.txManager.WithTx(ctx, func(ctx context.Context) error {
		account, err := a.accountRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		mutate(account)
		account.UpdatedAt = a.now()

		if err := a.accountRepo.Update(ctx, account); err != nil {
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
