package domain

import "time"

// TokenType is the authorization scheme clients must use with an issued token.
const TokenType = "Bearer"

// LoginInput carries the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// IssuedToken is a freshly minted access token.
type IssuedToken struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}
