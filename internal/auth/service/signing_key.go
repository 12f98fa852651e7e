package service

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// signingKeyInfo is the HKDF info label, versioned so the derivation can change later.
const signingKeyInfo = "access-token-signing-v1"

// signingKeySize is the HMAC-SHA256 key size in bytes.
const signingKeySize = 32

// DeriveSigningKey uses HKDF-SHA256 to derive the 32-byte token signing key from the
// configured secret. The configured value is never used as an HMAC key directly.
func DeriveSigningKey(secret []byte) ([]byte, error) {
	reader := hkdf.New(sha256.New, secret, nil, []byte(signingKeyInfo))

	signingKey := make([]byte, signingKeySize)
	if _, err := io.ReadFull(reader, signingKey); err != nil {
		return nil, err
	}

	return signingKey, nil
}

