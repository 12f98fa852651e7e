package app

import (
	"context"
	"fmt"
	"log/slog"

	authHTTP "github.com/linguahub/linguahub/internal/auth/http"
	authService "github.com/linguahub/linguahub/internal/auth/service"
	authUseCase "github.com/linguahub/linguahub/internal/auth/usecase"
	"github.com/linguahub/linguahub/internal/config"
)

// PasswordService returns the Argon2id password service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// KMSService returns the service used to open KMS keepers.
func (c *Container) KMSService() authService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = authService.NewKMSService()
	})
	return c.kmsService
}

// TokenCodec returns the access token codec. Its secret is resolved once: a KMS
// ciphertext wins over a plaintext secret, and with neither configured the development
// fallback is used with a warning.
func (c *Container) TokenCodec(ctx context.Context) (authService.TokenCodec, error) {
	c.tokenCodecInit.Do(func() {
		c.tokenCodec, c.initErrors["tokenCodec"] = c.initTokenCodec(ctx)
	})
	if err := c.initErrors["tokenCodec"]; err != nil {
		return nil, err
	}
	return c.tokenCodec, nil
}

// Gate returns the request gate, wrapped with metrics when enabled.
func (c *Container) Gate(ctx context.Context) (authUseCase.Gate, error) {
	c.gateInit.Do(func() {
		c.gate, c.initErrors["gate"] = c.initGate(ctx)
	})
	if err := c.initErrors["gate"]; err != nil {
		return nil, err
	}
	return c.gate, nil
}

// LoginUseCase returns the login use case, wrapped with metrics when enabled.
func (c *Container) LoginUseCase(ctx context.Context) (authUseCase.LoginUseCase, error) {
	c.loginUseCaseInit.Do(func() {
		c.loginUseCase, c.initErrors["loginUseCase"] = c.initLoginUseCase(ctx)
	})
	if err := c.initErrors["loginUseCase"]; err != nil {
		return nil, err
	}
	return c.loginUseCase, nil
}

// AuthHandler returns the HTTP handler for login, refresh and /v1/me.
func (c *Container) AuthHandler(ctx context.Context) (*authHTTP.AuthHandler, error) {
	c.authHandlerInit.Do(func() {
		c.authHandler, c.initErrors["authHandler"] = c.initAuthHandler(ctx)
	})
	if err := c.initErrors["authHandler"]; err != nil {
		return nil, err
	}
	return c.authHandler, nil
}

func (c *Container) resolveTokenSecret(ctx context.Context) ([]byte, error) {
	switch {
	case c.config.AuthTokenSecretCiphertext != "":
		return authService.DecryptTokenSecret(
			ctx,
			c.KMSService(),
			c.config.KMSKeyURI,
			c.config.AuthTokenSecretCiphertext,
		)
	case c.config.AuthTokenSecret != "":
		return []byte(c.config.AuthTokenSecret), nil
	case c.config.AuthTokenSecretRequired:
		return nil, config.ErrTokenSecretRequired
	default:
		c.Logger().Warn("AUTH_TOKEN_SECRET is not set, signing tokens with the insecure development secret")
		return []byte(config.DefaultAuthTokenSecret), nil
	}
}

func (c *Container) initTokenCodec(ctx context.Context) (authService.TokenCodec, error) {
	secret, err := c.resolveTokenSecret(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token secret: %w", err)
	}

	var opts []authService.TokenCodecOption
	if c.config.AuthTokenIssuer != "" {
		opts = append(opts, authService.WithIssuer(c.config.AuthTokenIssuer))
	}
	return authService.NewTokenCodec(secret, opts...), nil
}

func (c *Container) initGate(ctx context.Context) (authUseCase.Gate, error) {
	codec, err := c.TokenCodec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for gate: %w", err)
	}
	accounts, err := c.AccountRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get account repository for gate: %w", err)
	}

	gate := authUseCase.NewGate(
		codec,
		authUseCase.NewIdentityResolver(accounts),
		authUseCase.NewRoleAuthorizer(),
		c.Logger().With(slog.String("component", "gate")),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for gate: %w", err)
		}
		return authUseCase.NewGateWithMetrics(gate, businessMetrics), nil
	}
	return gate, nil
}

func (c *Container) initLoginUseCase(ctx context.Context) (authUseCase.LoginUseCase, error) {
	codec, err := c.TokenCodec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for login use case: %w", err)
	}
	accounts, err := c.AccountRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get account repository for login use case: %w", err)
	}

	useCase := authUseCase.NewLoginUseCase(accounts, c.PasswordService(), codec, c.config.AuthTokenExpiration)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for login use case: %w", err)
		}
		return authUseCase.NewLoginUseCaseWithMetrics(useCase, businessMetrics), nil
	}
	return useCase, nil
}

func (c *Container) initAuthHandler(ctx context.Context) (*authHTTP.AuthHandler, error) {
	loginUseCase, err := c.LoginUseCase(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get login use case for auth handler: %w", err)
	}
	accounts, err := c.AccountUseCase(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get account use case for auth handler: %w", err)
	}
	return authHTTP.NewAuthHandler(loginUseCase, accounts, c.Logger()), nil
}
