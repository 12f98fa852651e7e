// Package mocks provides testify mocks of the auth use cases for handler and
// middleware tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
)

// MockGate is a mock implementation of usecase.Gate.
type MockGate struct {
	mock.Mock
}

// Evaluate mocks Gate.Evaluate.
func (m *MockGate) Evaluate(
	ctx context.Context,
	authorizationHeader string,
	required authDomain.RoleSet,
) *authDomain.GateResult {
	args := m.Called(ctx, authorizationHeader, required)
	return args.Get(0).(*authDomain.GateResult)
}

// MockLoginUseCase is a mock implementation of usecase.LoginUseCase.
type MockLoginUseCase struct {
	mock.Mock
}

// Login mocks LoginUseCase.Login.
func (m *MockLoginUseCase) Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.IssuedToken, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IssuedToken), args.Error(1)
}

// Refresh mocks LoginUseCase.Refresh.
func (m *MockLoginUseCase) Refresh(
	ctx context.Context,
	identity *authDomain.IdentityContext,
) (*authDomain.IssuedToken, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IssuedToken), args.Error(1)
}
