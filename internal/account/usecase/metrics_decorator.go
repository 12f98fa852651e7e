package usecase

import (
	"context"
	"time"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	"github.com/linguahub/linguahub/internal/metrics"
)

// accountUseCaseWithMetrics decorates AccountUseCase with metrics instrumentation.
type accountUseCaseWithMetrics struct {
	next    AccountUseCase
	metrics metrics.BusinessMetrics
}

// NewAccountUseCaseWithMetrics wraps an AccountUseCase with metrics recording.
func NewAccountUseCaseWithMetrics(useCase AccountUseCase, m metrics.BusinessMetrics) AccountUseCase {
	return &accountUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *accountUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	a.metrics.RecordOperation(ctx, "account", operation, status)
	a.metrics.RecordDuration(ctx, "account", operation, time.Since(start), status)
}

// Create records metrics for account creation.
func (a *accountUseCaseWithMetrics) Create(
	ctx context.Context,
	input *accountDomain.CreateAccountInput,
) (*accountDomain.Account, error) {
	start := time.Now()
	account, err := a.next.Create(ctx, input)
	a.record(ctx, "account_create", start, err)
	return account, err
}

// Get records metrics for account lookups.
func (a *accountUseCaseWithMetrics) Get(ctx context.Context, id string) (*accountDomain.Account, error) {
	start := time.Now()
	account, err := a.next.Get(ctx, id)
	a.record(ctx, "account_get", start, err)
	return account, err
}

// List records metrics for account listings.
func (a *accountUseCaseWithMetrics) List(
	ctx context.Context,
	filter accountDomain.ListAccountsFilter,
) ([]*accountDomain.Account, error) {
	start := time.Now()
	accounts, err := a.next.List(ctx, filter)
	a.record(ctx, "account_list", start, err)
	return accounts, err
}

// UpdateStatus records metrics for status changes.
func (a *accountUseCaseWithMetrics) UpdateStatus(
	ctx context.Context,
	id string,
	status accountDomain.Status,
) (*accountDomain.Account, error) {
	start := time.Now()
	account, err := a.next.UpdateStatus(ctx, id, status)
	a.record(ctx, "account_update_status", start, err)
	return account, err
}

// UpdateRole records metrics for role changes.
func (a *accountUseCaseWithMetrics) UpdateRole(
	ctx context.Context,
	id string,
	role accountDomain.Role,
) (*accountDomain.Account, error) {
	start := time.Now()
	account, err := a.next.UpdateRole(ctx, id, role)
	a.record(ctx, "account_update_role", start, err)
	return account, err
}
