// Package mocks provides testify mocks of the account use case for handler and
// command tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
)

// MockAccountUseCase is a mock implementation of usecase.AccountUseCase.
type MockAccountUseCase struct {
	mock.Mock
}

// Create mocks AccountUseCase.Create.
func (m *MockAccountUseCase) Create(
	ctx context.Context,
	input *accountDomain.CreateAccountInput,
) (*accountDomain.Account, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

// Get mocks AccountUseCase.Get.
func (m *MockAccountUseCase) Get(ctx context.Context, id string) (*accountDomain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

// List mocks AccountUseCase.List.
func (m *MockAccountUseCase) List(
	ctx context.Context,
	filter accountDomain.ListAccountsFilter,
) ([]*accountDomain.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accountDomain.Account), args.Error(1)
}

// UpdateStatus mocks AccountUseCase.UpdateStatus.
func (m *MockAccountUseCase) UpdateStatus(
	ctx context.Context,
	id string,
	status accountDomain.Status,
) (*accountDomain.Account, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}

// UpdateRole mocks AccountUseCase.UpdateRole.
func (m *MockAccountUseCase) UpdateRole(
	ctx context.Context,
	id string,
	role accountDomain.Role,
) (*accountDomain.Account, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountDomain.Account), args.Error(1)
}
