package service

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
	apperrors "github.com/linguahub/linguahub/internal/errors"
)

// tokenCodec implements TokenCodec with HS256 JSON Web Tokens.
type tokenCodec struct {
	signingKey []byte
	issuer     string
	now        func() time.Time
	parser     *jwt.Parser
}

// TokenCodecOption configures a TokenCodec.
type TokenCodecOption func(*tokenCodec)

// WithIssuer sets the "iss" claim written on encode and required on decode.
func WithIssuer(issuer string) TokenCodecOption {
	return func(c *tokenCodec) {
		c.issuer = issuer
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) TokenCodecOption {
	return func(c *tokenCodec) {
		c.now = now
	}
}

// NewTokenCodec creates a TokenCodec whose HMAC key is derived from secret with
// DeriveSigningKey. Two codecs built from different secrets reject each other's tokens.
func NewTokenCodec(secret []byte, opts ...TokenCodecOption) TokenCodec {
	signingKey, err := DeriveSigningKey(secret)
	if err != nil {
		// HKDF-SHA256 only fails when more than 255 blocks are requested
		panic(err)
	}

	c := &tokenCodec{
		signingKey: signingKey,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if c.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(c.issuer))
	}
	c.parser = jwt.NewParser(parserOpts...)

	return c
}

// Encode mints an HS256 token carrying sub, iat, exp, iss and a UUIDv7 jti.
// Timestamps have second precision. For ttl > 0 the expiry is rounded up to the next
// whole second so the token is never already expired when returned.
func (c *tokenCodec) Encode(subjectID string, ttl time.Duration) (string, time.Time, error) {
	if subjectID == "" {
		return "", time.Time{}, apperrors.Wrap(apperrors.ErrInvalidInput, "subject id is required")
	}

	tokenID, err := uuid.NewV7()
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to generate token id")
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		ID:        tokenID.String(),
		Subject:   subjectID,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiryFor(now, ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signingKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return token, claims.ExpiresAt.Time, nil
}

// expiryFor returns now+ttl at second precision, rounding up when ttl > 0.
func expiryFor(now time.Time, ttl time.Duration) time.Time {
	exact := now.Add(ttl)
	truncated := exact.Truncate(time.Second)
	if ttl > 0 && truncated.Before(exact) {
		return truncated.Add(time.Second)
	}
	return truncated
}

// Decode verifies the token and returns its credential.
//
// The signature segment must be canonical base64url, otherwise altering the trailing
// padding bits would yield a different string carrying the same signature. The jwt
// parser then checks the signature before it validates any claim.
func (c *tokenCodec) Decode(token string) (*authDomain.Credential, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 || segments[0] == "" || segments[1] == "" || segments[2] == "" {
		return nil, authDomain.ErrMalformedToken
	}
	if _, err := base64.RawURLEncoding.Strict().DecodeString(segments[2]); err != nil {
		return nil, authDomain.ErrInvalidSignature
	}

	claims := &jwt.RegisteredClaims{}
	_, err := c.parser.ParseWithClaims(token, claims, c.keyFunc)
	if err != nil {
		return nil, mapParseError(err)
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, authDomain.ErrMalformedToken
	}

	credential := &authDomain.Credential{
		ID:        claims.ID,
		SubjectID: claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		credential.IssuedAt = claims.IssuedAt.Time
	}

	return credential, nil
}

func (c *tokenCodec) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, apperrors.New("unexpected signing method")
	}
	return c.signingKey, nil
}

// mapParseError collapses jwt errors onto the three codec errors.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return authDomain.ErrMalformedToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return authDomain.ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return authDomain.ErrTokenExpired
	default:
		return authDomain.ErrMalformedToken
	}
}
