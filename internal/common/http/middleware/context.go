package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	commonhttp "github.com/budhip/go-fp-ledger/internal/common/http"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/models"
)

// Context stores the request id as the correlation id of the request context.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if id == "" {
				id = uuid.NewString()
			}
			ctx := log.WithCorrelationID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// Owner requires a positive numeric X-User-ID header and stores it in the
// request context.
func (m *AppMiddleware) Owner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(commonhttp.HeaderUserID))
			owner, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || owner <= 0 {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, models.GetErrMap(models.ErrKeyMissingOwner))
			}
			ctx := commonhttp.WithOwner(c.Request().Context(), owner)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
