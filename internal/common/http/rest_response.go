package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/models"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = fmt.Sprint(echoErr.Message)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, errors interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errors.(*multierror.Error); ok {
		res.Errors = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

// StatusCode maps domain errors to the HTTP status used when responding.
func StatusCode(err error) int {
	var (
		valErr *common.ValidationError
		cfgErr *common.ConfigurationError
		detail models.ErrorDetail
	)
	switch {
	case errors.As(err, &detail) && detail.Code == models.MapErrors[models.ErrKeyDataNotFound].Code:
		return http.StatusNotFound
	case errors.Is(err, common.ErrDataNotFound), errors.Is(err, common.ErrNoRows):
		return http.StatusNotFound
	case errors.As(err, &valErr), errors.As(err, &cfgErr),
		errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrUnbalancedJournal),
		errors.Is(err, common.ErrMixedGroupTypes),
		errors.Is(err, common.ErrEmptyGroup),
		errors.Is(err, common.ErrInvalidRepetition),
		errors.Is(err, common.ErrInvalidAmount),
		errors.Is(err, common.ErrInvalidFormatDate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, common.ErrNotAnOccurrence),
		errors.Is(err, common.ErrRecurrenceInactive),
		errors.Is(err, common.ErrAlreadyMaterialized):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
