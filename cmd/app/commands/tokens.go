package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
	authService "github.com/linguahub/linguahub/internal/auth/service"
	authUseCase "github.com/linguahub/linguahub/internal/auth/usecase"
)

// RunIssueToken signs an access token for subjectID without a password, for operators
// and smoke tests. The subject is not looked up; the gate checks it on use.
func RunIssueToken(
	codec authService.TokenCodec,
	logger *slog.Logger,
	subjectID string,
	ttl time.Duration,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if strings.TrimSpace(subjectID) == "" {
		return fmt.Errorf("subject id cannot be empty")
	}

	token, expiresAt, err := codec.Encode(subjectID, ttl)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("token issued",
		slog.String("subject_id", subjectID),
		slog.Time("expires_at", expiresAt),
	)

	if format == FormatJSON {
		return writeJSON(io.Writer, map[string]string{
			"token":      token,
			"token_type": authDomain.TokenType,
			"expires_at": expiresAt.Format(time.RFC3339),
		})
	}

	_, _ = fmt.Fprintf(io.Writer, "Token: %s\n", token)
	_, _ = fmt.Fprintf(io.Writer, "Expires at: %s\n", expiresAt.Format(time.RFC3339))
	return nil
}

// RunVerifyToken runs token through the request gate with the comma separated roles, as
// a protected route would, and prints the outcome. A rejection is reported, not
// returned as an error.
func RunVerifyToken(
	ctx context.Context,
	gate authUseCase.Gate,
	token string,
	roles string,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	required, err := parseRoles(roles)
	if err != nil {
		return err
	}

	result := gate.Evaluate(ctx, authDomain.TokenType+" "+token, required)

	out := map[string]string{"state": string(result.State)}
	if result.IsForwarded() {
		out["subject_id"] = result.Identity.ID
		out["role"] = string(result.Identity.Role)
	} else if result.Rejection != nil {
		out["reason"] = string(result.Rejection.Reason)
		out["rejected_at"] = string(result.Rejection.State)
		if result.Rejection.Decision != nil {
			out["message"] = result.Rejection.Decision.Message()
		}
	}

	if format == FormatJSON {
		return writeJSON(io.Writer, out)
	}

	_, _ = fmt.Fprintf(io.Writer, "State: %s\n", out["state"])
	for _, key := range []string{"subject_id", "role", "reason", "rejected_at", "message"} {
		if value, ok := out[key]; ok {
			_, _ = fmt.Fprintf(io.Writer, "%s: %s\n", key, value)
		}
	}
	return nil
}

// parseRoles returns nil for an empty list, which admits any active identity.
func parseRoles(raw string) (authDomain.RoleSet, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var roles []accountDomain.Role
	for part := range strings.SplitSeq(raw, ",") {
		role := accountDomain.Role(strings.TrimSpace(part))
		if role == "" {
			continue
		}
		if !role.Valid() {
			return nil, fmt.Errorf("invalid role %q", role)
		}
		roles = append(roles, role)
	}
	return authDomain.NewRoleSet(roles...), nil
}
