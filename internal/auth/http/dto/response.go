package dto

import (
	"time"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
)

// TokenResponse contains an issued access token.
type TokenResponse struct {
	Token     string    `json:"token"` //nolint:gosec // returned to its owner only
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MapIssuedTokenToResponse converts an issued token to an API response.
func MapIssuedTokenToResponse(token *authDomain.IssuedToken) TokenResponse {
	return TokenResponse{
		Token:     token.Token,
		TokenType: token.TokenType,
		ExpiresAt: token.ExpiresAt,
	}
}

// MeResponse describes the caller: the identity the gate resolved plus the profile.
type MeResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// MapMeResponse builds the profile response. Role comes from the identity so it matches
// what the gate authorized this request with.
func MapMeResponse(identity *authDomain.IdentityContext, account *accountDomain.Account) MeResponse {
	return MeResponse{
		ID:        identity.ID,
		Role:      string(identity.Role),
		Email:     account.Email,
		Name:      account.Name,
		Status:    string(account.Status),
		CreatedAt: account.CreatedAt,
	}
}

// RejectionResponse is the body of a gate rejection.
type RejectionResponse struct {
	Error         string   `json:"error"`
	Message       string   `json:"message"`
	RequiredRoles []string `json:"required_roles,omitempty"`
	Role          string   `json:"role,omitempty"`
}

// RoleNames converts a role set to plain strings.
func RoleNames(roles authDomain.RoleSet) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}
