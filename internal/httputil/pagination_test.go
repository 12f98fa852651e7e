package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/linguahub/linguahub/internal/errors"
	"github.com/linguahub/linguahub/internal/httputil"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/accounts"+query, nil)
	return c
}

func TestParsePagination_Accepted(t *testing.T) {
	tests := map[string][2]int{
		"":                          {0, httputil.DefaultLimit},
		"?role=teacher":             {0, httputil.DefaultLimit},
		"?offset=10&limit=20":       {10, 20},
		"?limit=100":                {0, httputil.MaxLimit},
		"?offset=250&status=active": {250, httputil.DefaultLimit},
	}

	for query, want := range tests {
		t.Run(query, func(t *testing.T) {
			offset, limit, err := httputil.ParsePagination(paginationContext(query))
			require.NoError(t, err)
			assert.Equal(t, want[0], offset)
			assert.Equal(t, want[1], limit)
		})
	}
}

func TestParsePagination_Rejected(t *testing.T) {
	tests := map[string]string{
		"?offset=-1":  "offset must be a non-negative integer",
		"?offset=abc": "offset must be a non-negative integer",
		"?limit=0":    "limit must be between 1 and 100",
		"?limit=101":  "limit must be between 1 and 100",
		"?limit=xyz":  "limit must be between 1 and 100",
	}

	for query, message := range tests {
		t.Run(query, func(t *testing.T) {
			offset, limit, err := httputil.ParsePagination(paginationContext(query))
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.ErrorContains(t, err, message)
			assert.Zero(t, offset)
			assert.Zero(t, limit)
		})
	}
}
