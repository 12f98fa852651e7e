package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
	authService "github.com/linguahub/linguahub/internal/auth/service"
)

// bearerPrefix is matched case-insensitively.
const bearerPrefix = "bearer "

type gate struct {
	codec      authService.TokenCodec
	resolver   IdentityResolver
	authorizer RoleAuthorizer
	logger     *slog.Logger
}

// NewGate composes the token codec, identity resolver and role authorizer. The gate
// holds no per-request state and is safe for concurrent use.
func NewGate(
	codec authService.TokenCodec,
	resolver IdentityResolver,
	authorizer RoleAuthorizer,
	logger *slog.Logger,
) Gate {
	return &gate{
		codec:      codec,
		resolver:   resolver,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Evaluate walks start, extracting_credential, decoding, resolving, authorizing and
// forwarded in that order, stopping at the first failing step.
func (g *gate) Evaluate(
	ctx context.Context,
	authorizationHeader string,
	required authDomain.RoleSet,
) *authDomain.GateResult {
	token, ok := ExtractBearerToken(authorizationHeader)
	if !ok {
		return g.reject(ctx, &authDomain.Rejection{
			Reason: authDomain.ReasonNoCredential,
			State:  authDomain.StateExtractingCredential,
		})
	}

	credential, err := g.codec.Decode(token)
	if err != nil {
		return g.reject(ctx, &authDomain.Rejection{
			Reason: authDomain.ReasonInvalidCredential,
			State:  authDomain.StateDecoding,
			Cause:  err,
		})
	}

	identity, err := g.resolver.Resolve(ctx, credential.SubjectID)
	if err != nil {
		return g.reject(ctx, &authDomain.Rejection{
			Reason:    resolutionReason(err),
			State:     authDomain.StateResolving,
			SubjectID: credential.SubjectID,
			Cause:     err,
		})
	}

	if !required.IsEmpty() {
		decision := g.authorizer.Authorize(identity, required)
		if !decision.Allowed {
			return g.reject(ctx, &authDomain.Rejection{
				Reason:    authDomain.ReasonForbidden,
				State:     authDomain.StateAuthorizing,
				SubjectID: identity.ID,
				Decision:  &decision,
			})
		}
	}

	g.logger.DebugContext(ctx, "request forwarded",
		slog.String("subject_id", identity.ID),
		slog.String("role", string(identity.Role)),
	)

	return authDomain.Forwarded(identity)
}

func (g *gate) reject(ctx context.Context, rejection *authDomain.Rejection) *authDomain.GateResult {
	attrs := []slog.Attr{
		slog.String("reason", string(rejection.Reason)),
		slog.String("state", string(rejection.State)),
	}
	if rejection.SubjectID != "" {
		attrs = append(attrs, slog.String("subject_id", rejection.SubjectID))
	}
	if rejection.Cause != nil {
		attrs = append(attrs, slog.Any("error", rejection.Cause))
	}
	if rejection.Decision != nil {
		attrs = append(attrs,
			slog.String("required_roles", rejection.Decision.Required.String()),
			slog.String("role", string(rejection.Decision.Actual)),
		)
	}

	level := slog.LevelWarn
	if rejection.Reason == authDomain.ReasonInternal {
		level = slog.LevelError
	}
	g.logger.LogAttrs(ctx, level, "request rejected", attrs...)

	return authDomain.Rejected(rejection)
}

// resolutionReason classifies a resolver error. Unusable accounts and a store read that
// outlived the request are unauthenticated; anything else is an internal fault.
func resolutionReason(err error) authDomain.RejectionReason {
	switch {
	case errors.Is(err, authDomain.ErrAccountNotFound),
		errors.Is(err, authDomain.ErrAccountNotActive),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return authDomain.ReasonUnauthenticated
	default:
		return authDomain.ReasonInternal
	}
}

// ExtractBearerToken pulls the token out of a "Bearer <token>" header value. The scheme
// is case-insensitive; an empty token or one containing whitespace is rejected.
func ExtractBearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := header[len(bearerPrefix):]
	if token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", false
	}

	return token, true
}
