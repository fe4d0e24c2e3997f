package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/models"
)

func TestRestErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		err      error
		wantBody string
	}{
		{
			name:     "plain error",
			status:   http.StatusInternalServerError,
			err:      assert.AnError,
			wantBody: `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
		},
		{
			name:     "mapped error",
			status:   http.StatusNotFound,
			err:      fmt.Errorf("wrapped: %w", models.GetErrMap(models.ErrKeyDataNotFound)),
			wantBody: `{"status":"error","code":"DATA_NOT_FOUND","message":"data not found"}`,
		},
		{
			name:     "echo error",
			status:   http.StatusBadRequest,
			err:      echo.NewHTTPError(http.StatusBadRequest, "bad payload"),
			wantBody: `{"status":"error","code":400,"message":"bad payload"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			assert.NoError(t, RestErrorResponse(c, tt.status, tt.err))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSuffix(rec.Body.String(), "\n"))
		})
	}
}

func TestRestErrorValidationResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	var errs *multierror.Error
	errs = multierror.Append(errs, fmt.Errorf("x"))

	assert.NoError(t, RestErrorValidationResponse(c, errs))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, `{"status":"error","message":"validation failed","errors":[{}]}`, strings.TrimSuffix(rec.Body.String(), "\n"))
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: common.NewNotFoundError("account", "1"), want: http.StatusNotFound},
		{err: models.GetErrMap(models.ErrKeyDataNotFound), want: http.StatusNotFound},
		{err: common.NewInvalidLegError(0, "Source", "no such account"), want: http.StatusUnprocessableEntity},
		{err: common.NewConfigurationError("resolve account type", common.ErrInvalidAccountType), want: http.StatusUnprocessableEntity},
		{err: fmt.Errorf("x: %w", common.ErrUnbalancedJournal), want: http.StatusUnprocessableEntity},
		{err: common.ErrAlreadyMaterialized, want: http.StatusConflict},
		{err: assert.AnError, want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestOwner(t *testing.T) {
	_, ok := Owner(context.Background())
	assert.False(t, ok)

	owner, ok := Owner(WithOwner(context.Background(), 7))
	assert.True(t, ok)
	assert.Equal(t, int64(7), owner)
}
