package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
	"github.com/linguahub/linguahub/internal/auth/http/dto"
	authUseCase "github.com/linguahub/linguahub/internal/auth/usecase"
	apperrors "github.com/linguahub/linguahub/internal/errors"
	"github.com/linguahub/linguahub/internal/httputil"
	customValidation "github.com/linguahub/linguahub/internal/validation"
)

// AccountReader loads the profile shown by /v1/me.
type AccountReader interface {
	Get(ctx context.Context, id string) (*accountDomain.Account, error)
}

// AuthHandler serves login, token refresh and the caller's profile.
type AuthHandler struct {
	loginUseCase authUseCase.LoginUseCase
	accounts     AccountReader
	logger       *slog.Logger
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(
	loginUseCase authUseCase.LoginUseCase,
	accounts AccountReader,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase: loginUseCase,
		accounts:     accounts,
		logger:       logger,
	}
}

// LoginHandler exchanges email and password for an access token.
// POST /v1/auth/login - Public, rate limited per IP.
// Unknown email and wrong password both answer 401 invalid_credentials.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.loginUseCase.Login(c.Request.Context(), &authDomain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, authDomain.ErrInvalidCredentials) {
			h.logger.WarnContext(c.Request.Context(), "login failed", slog.String("reason", "invalid_credentials"))
			c.Header("WWW-Authenticate", `Bearer realm="linguahub"`)
			c.JSON(http.StatusUnauthorized, httputil.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid email or password",
			})
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIssuedTokenToResponse(token))
}

// RefreshHandler issues a new token for the caller.
// POST /v1/auth/refresh - Any active identity; the gate has just re-read the account.
func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	identity, ok := GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	token, err := h.loginUseCase.Refresh(c.Request.Context(), identity)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIssuedTokenToResponse(token))
}

// MeHandler returns the caller's identity and profile.
// GET /v1/me - Any active identity.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	identity, ok := GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	account, err := h.accounts.Get(c.Request.Context(), identity.ID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMeResponse(identity, account))
}
