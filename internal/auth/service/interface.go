// Package service provides the technical building blocks of authentication: signing and
// verifying access tokens, deriving the signing key, opening KMS keepers and hashing
// account passwords.
package service

import (
	"context"
	"time"

	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
)

// TokenCodec encodes and verifies signed, time-bounded access tokens.
type TokenCodec interface {
	// Encode mints a token for subjectID that expires ttl from now.
	// A non-positive ttl yields a token that is already expired.
	Encode(subjectID string, ttl time.Duration) (token string, expiresAt time.Time, err error)

	// Decode verifies the signature first and only then reads the claims.
	// Returns ErrMalformedToken, ErrInvalidSignature or ErrTokenExpired on failure.
	Decode(token string) (*authDomain.Credential, error)
}

// PasswordService hashes and verifies account passwords.
type PasswordService interface {
	// HashPassword returns an encoded Argon2id hash of the password.
	HashPassword(plainPassword string) (string, error)

	// ComparePassword reports whether the password matches the hash in constant time.
	ComparePassword(plainPassword string, hashedPassword string) bool
}

// KMSKeeper decrypts ciphertexts with a KMS-held key. *secrets.Keeper implements it.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens keepers for gocloud.dev secrets URIs.
type KMSService interface {
	// OpenKeeper opens a keeper for keyURI (gcpkms://, awskms://, azurekeyvault://,
	// hashivault://, base64key://).
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}
