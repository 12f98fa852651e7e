package domain

import (
	"github.com/linguahub/linguahub/internal/errors"
)

// Token codec errors. Callers see them only as an invalid credential.
var (
	// ErrMalformedToken indicates the token could not be parsed at all.
	ErrMalformedToken = errors.Wrap(errors.ErrUnauthorized, "malformed token")

	// ErrInvalidSignature indicates the signature does not match the signing secret.
	ErrInvalidSignature = errors.Wrap(errors.ErrUnauthorized, "invalid token signature")

	// ErrTokenExpired indicates the current time is at or past the token expiry.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")
)

// Identity resolution errors.
var (
	// ErrAccountNotFound indicates the credential subject has no account.
	ErrAccountNotFound = errors.Wrap(errors.ErrLocked, "account not found")

	// ErrAccountNotActive indicates the account status is anything other than active.
	ErrAccountNotActive = errors.Wrap(errors.ErrLocked, "account not active")
)

// Login errors.
var (
	// ErrInvalidCredentials indicates an unknown email or a wrong password. The two
	// cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")
)
