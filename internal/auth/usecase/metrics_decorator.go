package usecase

import (
	"context"
	"time"

	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
	"github.com/linguahub/linguahub/internal/metrics"
)

// gateWithMetrics decorates Gate with metrics instrumentation.
type gateWithMetrics struct {
	next    Gate
	metrics metrics.BusinessMetrics
}

// NewGateWithMetrics wraps a Gate. The status label is "forwarded" or the rejection reason.
func NewGateWithMetrics(gate Gate, m metrics.BusinessMetrics) Gate {
	return &gateWithMetrics{
		next:    gate,
		metrics: m,
	}
}

// Evaluate records metrics for gate evaluations.
func (g *gateWithMetrics) Evaluate(
	ctx context.Context,
	authorizationHeader string,
	required authDomain.RoleSet,
) *authDomain.GateResult {
	start := time.Now()
	result := g.next.Evaluate(ctx, authorizationHeader, required)

	status := string(authDomain.StateForwarded)
	if result.Rejection != nil {
		status = string(result.Rejection.Reason)
	}

	g.metrics.RecordOperation(ctx, "auth", "gate_evaluate", status)
	g.metrics.RecordDuration(ctx, "auth", "gate_evaluate", time.Since(start), status)

	return result
}

// loginUseCaseWithMetrics decorates LoginUseCase with metrics instrumentation.
type loginUseCaseWithMetrics struct {
	next    LoginUseCase
	metrics metrics.BusinessMetrics
}

// NewLoginUseCaseWithMetrics wraps a LoginUseCase with metrics recording.
func NewLoginUseCaseWithMetrics(useCase LoginUseCase, m metrics.BusinessMetrics) LoginUseCase {
	return &loginUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (l *loginUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.IssuedToken, error) {
	start := time.Now()
	token, err := l.next.Login(ctx, input)

	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	l.metrics.RecordOperation(ctx, "auth", "login", status)
	l.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return token, err
}

// Refresh records metrics for token refresh operations.
func (l *loginUseCaseWithMetrics) Refresh(
	ctx context.Context,
	identity *authDomain.IdentityContext,
) (*authDomain.IssuedToken, error) {
	start := time.Now()
	token, err := l.next.Refresh(ctx, identity)

	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}

	l.metrics.RecordOperation(ctx, "auth", "token_refresh", status)
	l.metrics.RecordDuration(ctx, "auth", "token_refresh", time.Since(start), status)

	return token, err
}
