package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/linguahub/linguahub/internal/errors"
)

const (
	// DefaultLimit is the page size used when no limit is given.
	DefaultLimit = 50
	// MaxLimit caps the page size.
	MaxLimit = 100
)

// ParsePagination parses the offset and limit query parameters. Errors wrap
// ErrInvalidInput so HandleErrorGin answers 422.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, apperrors.Wrap(apperrors.ErrInvalidInput, "offset must be a non-negative integer")
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 || limit > MaxLimit {
		return 0, 0, apperrors.Wrapf(apperrors.ErrInvalidInput, "limit must be between 1 and %d", MaxLimit)
	}

	return offset, limit, nil
}
