package account_balances

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/budhip/go-fp-ledger/internal/common"
	commonhttp "github.com/budhip/go-fp-ledger/internal/common/http"
	"github.com/budhip/go-fp-ledger/internal/common/validation"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/services"
)

type accountBalanceHandler struct {
	balanceService services.BalanceService
	now            func() time.Time
}

func New(app *echo.Group, balanceService services.BalanceService) {
	ab := accountBalanceHandler{
		balanceService: balanceService,
		now:            time.Now,
	}

	endpoint := app.Group("/accounts")
	endpoint.GET("/:id/balance", ab.getBalance())
	endpoint.GET("/:id/balance-range", ab.getBalanceRange())
}

// getBalance returns the balance of an account at the end of a day
// @Summary Get balance of an account
// @Description Balance at the end of date, in currency_id or the account currency. date defaults to today.
// @Tags Balance
// @Produce  json
// @Param	X-User-ID header int true "owner id"
// @Param 	id path int true "account id"
// @Param 	date query string false "YYYY-MM-DD"
// @Param 	currency_id query int false "currency id"
// @Success 200 {object} models.BalanceResponse
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/accounts/{id}/balance [get]
func (ab accountBalanceHandler) getBalance() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.BalanceRequest)
		if err := c.Bind(req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, err)
		}

		date := common.StartOfDay(ab.now())
		if req.Date != "" {
			parsed, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.Date)
			if err != nil {
				return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
			}
			date = parsed
		}

		balance, err := ab.balanceService.Balance(c.Request().Context(), commonhttp.RequestOwner(c), req.AccountID, date, req.CurrencyID)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return commonhttp.RestSuccessResponse(c, http.StatusOK, models.BalanceResponse{
			AccountID:  req.AccountID,
			Date:       common.FormatDate(date),
			CurrencyID: req.CurrencyID,
			Balance:    balance.String(),
		})
	}
}

// getBalanceRange returns the balance of an account for every day with activity
// @Summary Get balances of an account over a range
// @Description The first entry is the balance of the day before start, followed by every date in [start, end] with activity.
// @Tags Balance
// @Produce  json
// @Param	X-User-ID header int true "owner id"
// @Param 	id path int true "account id"
// @Param 	start query string true "YYYY-MM-DD"
// @Param 	end query string true "YYYY-MM-DD"
// @Param 	currency_id query int false "currency id"
// @Success 200 {object} models.BalanceRangeResponse
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 500 {object} http.RestErrorResponseModel
// @Router /v1/accounts/{id}/balance-range [get]
func (ab accountBalanceHandler) getBalanceRange() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.BalanceRangeRequest)
		if err := c.Bind(req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, err)
		}

		start, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.Start)
		if err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		end, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.End)
		if err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if end.Before(start) {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, models.GetErrMap(models.ErrKeyBadRequest, "end is before start"))
		}

		balances, err := ab.balanceService.BalanceInRange(c.Request().Context(), commonhttp.RequestOwner(c), req.AccountID, start, end, req.CurrencyID)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		entries := balances.Entries
		if entries == nil {
			entries = []models.DayBalance{}
		}
		return commonhttp.RestSuccessResponse(c, http.StatusOK, models.BalanceRangeResponse{
			AccountID:  req.AccountID,
			CurrencyID: req.CurrencyID,
			Balances:   entries,
		})
	}
}
