package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	accountDomain "github.com/linguahub/linguahub/internal/account/domain"
	"github.com/linguahub/linguahub/internal/account/http/dto"
	"github.com/linguahub/linguahub/internal/account/usecase/mocks"
)

func setupTestHandler(t *testing.T) (*AccountHandler, *mocks.MockAccountUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockAccountUseCase{}
	t.Cleanup(func() { mockUseCase.AssertExpectations(t) })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAccountHandler(mockUseCase, logger), mockUseCase
}

func createTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func testAccount() *accountDomain.Account {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &accountDomain.Account{
		ID:           "0195a1b2-0000-7000-8000-000000000042",
		Email:        "maria@linguahub.test",
		Name:         "Maria",
		PasswordHash: "$argon2id$secret-hash",
		Role:         accountDomain.RoleTeacher,
		Status:       accountDomain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestAccountHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		account := testAccount()

		request := dto.CreateAccountRequest{
			Email:    "maria@linguahub.test",
			Name:     "Maria",
			Password: "CorrectHorse42",
			Role:     "teacher",
		}
		expectedInput := &accountDomain.CreateAccountInput{
			Email:    request.Email,
			Name:     request.Name,
			Password: request.Password,
			Role:     accountDomain.RoleTeacher,
		}
		mockUseCase.On("Create", mock.Anything, expectedInput).Return(account, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/accounts", request)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response dto.AccountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, account.ID, response.ID)
		assert.Equal(t, "teacher", response.Role)
		assert.NotContains(t, w.Body.String(), "argon2id")
	})

	t.Run("Error_ValidationFailed", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/accounts", dto.CreateAccountRequest{
			Email:    "maria@linguahub.test",
			Name:     "Maria",
			Password: "weak",
			Role:     "teacher",
		})
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/accounts", nil)
		c.Request = httptest.NewRequest(http.MethodPost, "/v1/accounts", bytes.NewBufferString("{"))
		c.Request.Header.Set("Content-Type", "application/json")
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_Conflict", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, accountDomain.ErrAccountAlreadyExists).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/accounts", dto.CreateAccountRequest{
			Email:    "maria@linguahub.test",
			Name:     "Maria",
			Password: "CorrectHorse42",
			Role:     "student",
		})
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAccountHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		account := testAccount()
		mockUseCase.On("Get", mock.Anything, account.ID).Return(account, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/accounts/"+account.ID, nil)
		c.Params = gin.Params{{Key: "id", Value: account.ID}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), account.Email)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("Get", mock.Anything, "missing").Return(nil, accountDomain.ErrAccountNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/v1/accounts/missing", nil)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAccountHandler_ListHandler(t *testing.T) {
	t.Run("Success_WithFilters", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		filter := accountDomain.ListAccountsFilter{
			Role:   accountDomain.RoleTeacher,
			Status: accountDomain.StatusActive,
			Offset: 10,
			Limit:  5,
		}
		mockUseCase.On("List", mock.Anything, filter).Return([]*accountDomain.Account{testAccount()}, nil).Once()

		c, w := createTestContext(
			http.MethodGet,
			"/v1/accounts?role=teacher&status=active&offset=10&limit=5",
			nil,
		)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.ListAccountsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 1)
	})

	t.Run("Error_InvalidLimit", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/accounts?limit=1000", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidRoleFilter", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("List", mock.Anything, mock.Anything).Return(nil, accountDomain.ErrInvalidRole).Once()

		c, w := createTestContext(http.MethodGet, "/v1/accounts?role=owner", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAccountHandler_UpdateStatusHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		account := testAccount()
		account.Status = accountDomain.StatusSuspended
		mockUseCase.On("UpdateStatus", mock.Anything, account.ID, accountDomain.StatusSuspended).
			Return(account, nil).
			Once()

		c, w := createTestContext(http.MethodPatch, "/v1/accounts/"+account.ID+"/status",
			dto.UpdateStatusRequest{Status: "suspended"})
		c.Params = gin.Params{{Key: "id", Value: account.ID}}
		handler.UpdateStatusHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"suspended"`)
	})

	t.Run("Error_InvalidStatus", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPatch, "/v1/accounts/1/status", dto.UpdateStatusRequest{Status: "frozen"})
		c.Params = gin.Params{{Key: "id", Value: "1"}}
		handler.UpdateStatusHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAccountHandler_UpdateRoleHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		account := testAccount()
		account.Role = accountDomain.RoleAdmin
		mockUseCase.On("UpdateRole", mock.Anything, account.ID, accountDomain.RoleAdmin).
			Return(account, nil).
			Once()

		c, w := createTestContext(http.MethodPatch, "/v1/accounts/"+account.ID+"/role",
			dto.UpdateRoleRequest{Role: "admin"})
		c.Params = gin.Params{{Key: "id", Value: account.ID}}
		handler.UpdateRoleHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"admin"`)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		mockUseCase.On("UpdateRole", mock.Anything, "missing", accountDomain.RoleStudent).
			Return(nil, accountDomain.ErrAccountNotFound).
			Once()

		c, w := createTestContext(http.MethodPatch, "/v1/accounts/missing/role", dto.UpdateRoleRequest{Role: "student"})
		c.Params = gin.Params{{Key: "id", Value: "missing"}}
		handler.UpdateRoleHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
