package app

import (
	"context"
	"fmt"

	accountHTTP "github.com/linguahub/linguahub/internal/account/http"
	"github.com/linguahub/linguahub/internal/account/repository"
	accountUseCase "github.com/linguahub/linguahub/internal/account/usecase"
)

// AccountRepository returns the account repository for the configured driver. The gate,
// login and account management all share it.
func (c *Container) AccountRepository(ctx context.Context) (accountUseCase.AccountRepository, error) {
	c.accountRepositoryInit.Do(func() {
		c.accountRepository, c.initErrors["accountRepository"] = c.initAccountRepository(ctx)
	})
	if err := c.initErrors["accountRepository"]; err != nil {
		return nil, err
	}
	return c.accountRepository, nil
}

// AccountUseCase returns the account management use case, wrapped with metrics when enabled.
func (c *Container) AccountUseCase(ctx context.Context) (accountUseCase.AccountUseCase, error) {
	c.accountUseCaseInit.Do(func() {
		c.accountUseCase, c.initErrors["accountUseCase"] = c.initAccountUseCase(ctx)
	})
	if err := c.initErrors["accountUseCase"]; err != nil {
		return nil, err
	}
	return c.accountUseCase, nil
}

// AccountHandler returns the HTTP handler for account management.
func (c *Container) AccountHandler(ctx context.Context) (*accountHTTP.AccountHandler, error) {
	c.accountHandlerInit.Do(func() {
		c.accountHandler, c.initErrors["accountHandler"] = c.initAccountHandler(ctx)
	})
	if err := c.initErrors["accountHandler"]; err != nil {
		return nil, err
	}
	return c.accountHandler, nil
}

func (c *Container) initAccountRepository(ctx context.Context) (accountUseCase.AccountRepository, error) {
	if c.config.DBDriver == DriverMemory {
		return repository.NewMemoryAccountRepository(), nil
	}

	db, err := c.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get database for account repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return repository.NewPostgreSQLAccountRepository(db), nil
	case "mysql":
		return repository.NewMySQLAccountRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAccountUseCase(ctx context.Context) (accountUseCase.AccountUseCase, error) {
	txManager, err := c.TxManager(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for account use case: %w", err)
	}
	accounts, err := c.AccountRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get account repository for account use case: %w", err)
	}

	useCase := accountUseCase.NewAccountUseCase(txManager, accounts, c.PasswordService())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for account use case: %w", err)
		}
		return accountUseCase.NewAccountUseCaseWithMetrics(useCase, businessMetrics), nil
	}
	return useCase, nil
}

func (c *Container) initAccountHandler(ctx context.Context) (*accountHTTP.AccountHandler, error) {
	useCase, err := c.AccountUseCase(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get account use case for account handler: %w", err)
	}
	return accountHTTP.NewAccountHandler(useCase, c.Logger()), nil
}
