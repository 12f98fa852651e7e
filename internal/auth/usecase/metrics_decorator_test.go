package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
	"github.com/linguahub/linguahub/internal/auth/usecase/mocks"
)

func TestGateWithMetrics(t *testing.T) {
	ctx := context.Background()
	required := authDomain.NewRoleSet(accountDomain.RoleAdmin)

	tests := []struct {
		name   string
		result *authDomain.GateResult
		status string
	}{
		{
			name:   "Forwarded",
			result: authDomain.Forwarded(&authDomain.IdentityContext{ID: "1", Role: accountDomain.RoleAdmin}),
			status: "forwarded",
		},
		{
			name: "Forbidden",
			result: authDomain.Rejected(&authDomain.Rejection{
				Reason: authDomain.ReasonForbidden,
				State:  authDomain.StateAuthorizing,
			}),
			status: "forbidden",
		},
		{
			name: "No credential",
			result: authDomain.Rejected(&authDomain.Rejection{
				Reason: authDomain.ReasonNoCredential,
				State:  authDomain.StateExtractingCredential,
			}),
			status: "no_credential",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &mocks.MockGate{}
			m := &mockBusinessMetrics{}
			g := NewGateWithMetrics(next, m)

			next.On("Evaluate", ctx, "Bearer x", required).Return(tt.result).Once()
			m.On("RecordOperation", ctx, "auth", "gate_evaluate", tt.status).Return().Once()
			m.On("RecordDuration", ctx, "auth", "gate_evaluate", mock.AnythingOfType("time.Duration"), tt.status).
				Return().
				Once()

			assert.Same(t, tt.result, g.Evaluate(ctx, "Bearer x", required))
			next.AssertExpectations(t)
			m.AssertExpectations(t)
		})
	}
}

func TestLoginUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	input := &authDomain.LoginInput{Email: "a@linguahub.test", Password: "x"}
	identity := &authDomain.IdentityContext{ID: "1", Role: accountDomain.RoleStudent}
	issued := &authDomain.IssuedToken{Token: "t", TokenType: "Bearer", ExpiresAt: time.Now()}

	t.Run("Login success", func(t *testing.T) {
		next := &mocks.MockLoginUseCase{}
		m := &mockBusinessMetrics{}
		uc := NewLoginUseCaseWithMetrics(next, m)

		next.On("Login", ctx, input).Return(issued, nil).Once()
		m.On("RecordOperation", ctx, "auth", "login", "success").Return().Once()
		m.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, issued, res)
		m.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		next := &mocks.MockLoginUseCase{}
		m := &mockBusinessMetrics{}
		uc := NewLoginUseCaseWithMetrics(next, m)

		next.On("Login", ctx, input).Return(nil, authDomain.ErrInvalidCredentials).Once()
		m.On("RecordOperation", ctx, "auth", "login", "error").Return().Once()
		m.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.Nil(t, res)
		m.AssertExpectations(t)
	})

	t.Run("Refresh error", func(t *testing.T) {
		next := &mocks.MockLoginUseCase{}
		m := &mockBusinessMetrics{}
		uc := NewLoginUseCaseWithMetrics(next, m)

		next.On("Refresh", ctx, identity).Return(nil, errors.New("boom")).Once()
		m.On("RecordOperation", ctx, "auth", "token_refresh", "error").Return().Once()
		m.On("RecordDuration", ctx, "auth", "token_refresh", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		_, err := uc.Refresh(ctx, identity)
		assert.Error(t, err)
		m.AssertExpectations(t)
	})
}
