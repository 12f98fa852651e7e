package dto

import (
	"time"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
)

// AccountResponse represents an account in API responses. The password hash is never
// exposed.
type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapAccountToResponse converts a domain account to an API response.
func MapAccountToResponse(account *accountDomain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      string(account.Role),
		Status:    string(account.Status),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ListAccountsResponse represents a page of accounts.
type ListAccountsResponse struct {
	Data []AccountResponse `json:"data"`
}

// MapAccountsToListResponse converts domain accounts to a list API response.
func MapAccountsToListResponse(accounts []*accountDomain.Account) ListAccountsResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, MapAccountToResponse(account))
	}
	return ListAccountsResponse{Data: responses}
}
