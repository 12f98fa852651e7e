// Package http provides the admin HTTP handlers for account management.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	"github.com/linguahub/linguahub/internal/account/http/dto"
	accountUseCase "github.com/linguahub/linguahub/internal/account/usecase"
	"github.com/linguahub/linguahub/internal/httputil"
	customValidation "github.com/linguahub/linguahub/internal/validation"
)

// AccountHandler handles HTTP requests for account management. Routes are mounted
// behind the request gate with the admin role.
type AccountHandler struct {
	accountUseCase accountUseCase.AccountUseCase
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accountUseCase accountUseCase.AccountUseCase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// CreateHandler registers a new account.
// POST /v1/accounts - Returns 201 Created with the account.
func (h *AccountHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateAccountRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &accountDomain.CreateAccountInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     accountDomain.Role(req.Role),
		Status:   accountDomain.Status(req.Status),
	}

	account, err := h.accountUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAccountToResponse(account))
}

// GetHandler retrieves an account by id.
// GET /v1/accounts/:id
func (h *AccountHandler) GetHandler(c *gin.Context) {
	account, err := h.accountUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccountToResponse(account))
}

// ListHandler lists accounts newest first.
// GET /v1/accounts?role=teacher&status=active&offset=0&limit=50
func (h *AccountHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	filter := accountDomain.ListAccountsFilter{
		Role:   accountDomain.Role(c.Query("role")),
		Status: accountDomain.Status(c.Query("status")),
		Offset: offset,
		Limit:  limit,
	}

	accounts, err := h.accountUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccountsToListResponse(accounts))
}

// UpdateStatusHandler changes the status of an account. The change applies to the
// account's next request.
// PATCH /v1/accounts/:id/status
func (h *AccountHandler) UpdateStatusHandler(c *gin.Context) {
	var req dto.UpdateStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	account, err := h.accountUseCase.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		accountDomain.Status(req.Status),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccountToResponse(account))
}

// UpdateRoleHandler changes the role of an account.
// PATCH /v1/accounts/:id/role
func (h *AccountHandler) UpdateRoleHandler(c *gin.Context) {
	var req dto.UpdateRoleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	account, err := h.accountUseCase.UpdateRole(
		c.Request.Context(),
		c.Param("id"),
		accountDomain.Role(req.Role),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccountToResponse(account))
}
