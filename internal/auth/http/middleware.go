// Package http provides the gin adapters of the request gate, the login, refresh and
// profile handlers, and the rate limiting middleware.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
	"github.com/linguahub/linguahub/internal/auth/http/dto"
	authUseCase "github.com/linguahub/linguahub/internal/auth/usecase"
)

// GateMiddleware runs the request gate against the Authorization header. A forwarded
// request continues with its IdentityContext attached; a rejected one is answered as:
//
//	no_credential, invalid_credential  401
//	unauthenticated                    423
//	forbidden                          403 naming the required and actual roles
//	internal                           500
//
// An empty required set admits any active identity.
func GateMiddleware(gate authUseCase.Gate, required authDomain.RoleSet, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := gate.Evaluate(c.Request.Context(), c.GetHeader("Authorization"), required)
		if !result.IsForwarded() {
			rejection := result.Rejection
			if rejection == nil {
				logger.ErrorContext(c.Request.Context(), "gate returned neither identity nor rejection")
				rejection = &authDomain.Rejection{Reason: authDomain.ReasonInternal, State: result.State}
			}
			writeRejection(c, rejection)
			return
		}

		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), result.Identity))
		c.Next()
	}
}

// OperationMiddleware runs the gate with the roles policy declares for operation. The
// lookup happens once, when the route is registered.
func OperationMiddleware(
	gate authUseCase.Gate,
	policy *authDomain.Policy,
	operation string,
	logger *slog.Logger,
) gin.HandlerFunc {
	required, ok := policy.Lookup(operation)
	if !ok {
		logger.Warn("operation not declared in policy, any active identity is allowed",
			slog.String("operation", operation))
	}
	return GateMiddleware(gate, required, logger)
}

// RequireRoles adds a role requirement under a group already protected by
// GateMiddleware. A request without an identity is refused, never allowed.
func RequireRoles(logger *slog.Logger, roles ...accountDomain.Role) gin.HandlerFunc {
	required := authDomain.NewRoleSet(roles...)
	authorizer := authUseCase.NewRoleAuthorizer()

	return func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok {
			logger.WarnContext(c.Request.Context(), "role check without identity",
				slog.String("path", c.FullPath()))
			writeRejection(c, &authDomain.Rejection{
				Reason: authDomain.ReasonNoCredential,
				State:  authDomain.StateAuthorizing,
			})
			return
		}

		decision := authorizer.Authorize(identity, required)
		if !decision.Allowed {
			logger.WarnContext(c.Request.Context(), "request rejected",
				slog.String("reason", string(authDomain.ReasonForbidden)),
				slog.String("subject_id", identity.ID),
				slog.String("required_roles", required.String()),
				slog.String("role", string(identity.Role)),
			)
			writeRejection(c, &authDomain.Rejection{
				Reason:    authDomain.ReasonForbidden,
				State:     authDomain.StateAuthorizing,
				SubjectID: identity.ID,
				Decision:  &decision,
			})
			return
		}

		c.Next()
	}
}

// writeRejection answers and aborts. Causes stay in the logs written by the gate.
func writeRejection(c *gin.Context, rejection *authDomain.Rejection) {
	var status int
	response := dto.RejectionResponse{}

	switch rejection.Reason {
	case authDomain.ReasonNoCredential:
		status = http.StatusUnauthorized
		response.Error = "no_credential"
		response.Message = "No token provided"
	case authDomain.ReasonInvalidCredential:
		status = http.StatusUnauthorized
		response.Error = "invalid_credential"
		response.Message = "Invalid token"
	case authDomain.ReasonUnauthenticated:
		status = http.StatusLocked
		response.Error = "account_unavailable"
		response.Message = "Account is not available"
	case authDomain.ReasonForbidden:
		status = http.StatusForbidden
		response.Error = "forbidden"
		response.Message = "You don't have permission to access this resource"
		if rejection.Decision != nil {
			response.Message = rejection.Decision.Message()
			response.RequiredRoles = dto.RoleNames(rejection.Decision.Required)
			response.Role = string(rejection.Decision.Actual)
		}
	default:
		status = http.StatusInternalServerError
		response.Error = "internal_error"
		response.Message = "An internal error occurred"
	}

	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", `Bearer realm="linguahub"`)
	}
	c.AbortWithStatusJSON(status, response)
}
