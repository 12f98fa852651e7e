package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	"github.com/linguahub/linguahub/internal/account/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectRecord(m *mockBusinessMetrics, ctx context.Context, operation, status string) {
	m.On("RecordOperation", ctx, "account", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "account", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestAccountUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	account := &accountDomain.Account{ID: "1", Role: accountDomain.RoleStudent, Status: accountDomain.StatusActive}

	t.Run("Create success", func(t *testing.T) {
		next := &mocks.MockAccountUseCase{}
		m := &mockBusinessMetrics{}
		input := &accountDomain.CreateAccountInput{Email: "a@b.co"}

		next.On("Create", ctx, input).Return(account, nil).Once()
		expectRecord(m, ctx, "account_create", "success")

		got, err := NewAccountUseCaseWithMetrics(next, m).Create(ctx, input)
		assert.NoError(t, err)
		assert.Same(t, account, got)
		m.AssertExpectations(t)
	})

	t.Run("Get error", func(t *testing.T) {
		next := &mocks.MockAccountUseCase{}
		m := &mockBusinessMetrics{}

		next.On("Get", ctx, "404").Return(nil, accountDomain.ErrAccountNotFound).Once()
		expectRecord(m, ctx, "account_get", "error")

		_, err := NewAccountUseCaseWithMetrics(next, m).Get(ctx, "404")
		assert.ErrorIs(t, err, accountDomain.ErrAccountNotFound)
		m.AssertExpectations(t)
	})

	t.Run("List success", func(t *testing.T) {
		next := &mocks.MockAccountUseCase{}
		m := &mockBusinessMetrics{}
		filter := accountDomain.ListAccountsFilter{Limit: 10}

		next.On("List", ctx, filter).Return([]*accountDomain.Account{account}, nil).Once()
		expectRecord(m, ctx, "account_list", "success")

		got, err := NewAccountUseCaseWithMetrics(next, m).List(ctx, filter)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		m.AssertExpectations(t)
	})

	t.Run("UpdateStatus and UpdateRole", func(t *testing.T) {
		next := &mocks.MockAccountUseCase{}
		m := &mockBusinessMetrics{}
		uc := NewAccountUseCaseWithMetrics(next, m)

		next.On("UpdateStatus", ctx, "1", accountDomain.StatusBanned).Return(account, nil).Once()
		next.On("UpdateRole", ctx, "1", accountDomain.Role("owner")).Return(nil, accountDomain.ErrInvalidRole).Once()
		expectRecord(m, ctx, "account_update_status", "success")
		expectRecord(m, ctx, "account_update_role", "error")

		_, err := uc.UpdateStatus(ctx, "1", accountDomain.StatusBanned)
		assert.NoError(t, err)
		_, err = uc.UpdateRole(ctx, "1", "owner")
		assert.ErrorIs(t, err, accountDomain.ErrInvalidRole)
		m.AssertExpectations(t)
		next.AssertExpectations(t)
	})
}
