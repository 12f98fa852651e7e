package commands

import (
	"context"
	"fmt"
	"log/slog"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	accountUseCase "github.com/linguahub/linguahub/internal/account/usecase"
)

// RunUpdateAccountStatus moves an account to status. Suspending or banning takes effect
// on the account's next request since the gate re-reads status every time.
func RunUpdateAccountStatus(
	ctx context.Context,
	accounts accountUseCase.AccountUseCase,
	logger *slog.Logger,
	id, status, format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	account, err := accounts.UpdateStatus(ctx, id, accountDomain.Status(status))
	if err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
	}

	logger.Info("account status updated",
		slog.String("account_id", account.ID),
		slog.String("status", string(account.Status)),
	)
	return writeAccount(io, format, "Account status updated", account)
}

// RunUpdateAccountRole changes the role an account is authorized with.
func RunUpdateAccountRole(
	ctx context.Context,
	accounts accountUseCase.AccountUseCase,
	logger *slog.Logger,
	id, role, format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	account, err := accounts.UpdateRole(ctx, id, accountDomain.Role(role))
	if err != nil {
		return fmt.Errorf("failed to update account role: %w", err)
	}

	logger.Info("account role updated",
		slog.String("account_id", account.ID),
		slog.String("role", string(account.Role)),
	)
	return writeAccount(io, format, "Account role updated", account)
}
