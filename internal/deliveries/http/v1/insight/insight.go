package insight

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/budhip/go-fp-ledger/internal/common"
	commonhttp "github.com/budhip/go-fp-ledger/internal/common/http"
	"github.com/budhip/go-fp-ledger/internal/common/validation"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/services"
)

type insightHandler struct {
	operationsService services.OperationsService
}

type sumFunc func(ctx context.Context, owner int64, start, end time.Time, req models.InsightRequest) (map[int64]*models.CurrencySum, error)

type listFunc func(ctx context.Context, owner int64, start, end time.Time, accounts []int64) (map[int64]*models.CurrencyJournals, error)

// New insight handler will initialize the insight/ resources endpoint
func New(app *echo.Group, operationsSrv services.OperationsService) {
	ih := insightHandler{operationsService: operationsSrv}

	insight := app.Group("/insight")
	insight.GET("/expense", ih.sum(ih.sumExpenses))
	insight.GET("/income", ih.sum(ih.sumIncome))
	insight.GET("/transfer", ih.sum(ih.sumTransfers))
	insight.GET("/expense/journals", ih.list(operationsSrv.ListExpenses))
	insight.GET("/income/journals", ih.list(operationsSrv.ListIncome))
}

func (ih insightHandler) sumExpenses(ctx context.Context, owner int64, start, end time.Time, req models.InsightRequest) (map[int64]*models.CurrencySum, error) {
	return ih.operationsService.SumExpenses(ctx, owner, start, end, req.Accounts, req.Counterparts, req.CurrencyID)
}

func (ih insightHandler) sumIncome(ctx context.Context, owner int64, start, end time.Time, req models.InsightRequest) (map[int64]*models.CurrencySum, error) {
	return ih.operationsService.SumIncome(ctx, owner, start, end, req.Accounts, req.Counterparts, req.CurrencyID)
}

func (ih insightHandler) sumTransfers(ctx context.Context, owner int64, start, end time.Time, req models.InsightRequest) (map[int64]*models.CurrencySum, error) {
	return ih.operationsService.SumTransfers(ctx, owner, start, end, req.Accounts, req.CurrencyID)
}

// sum godoc
// @Summary 	Sum journals per currency
// @Description Expenses are negative, income and transfers positive. counterparts[] filters expense or revenue accounts. With currency_id, journals whose foreign currency matches are included.
// @Tags 		Insight
// @Produce		json
// @Param	X-User-ID header int true "owner id"
// @Param 	start query string true "YYYY-MM-DD"
// @Param 	end query string true "YYYY-MM-DD"
// @Param 	accounts[] query []int false "asset accounts"
// @Param 	counterparts[] query []int false "expense or revenue accounts"
// @Param 	currency_id query int false "currency id"
// @Success 200 {array} models.InsightSumResponse
// @Failure 400 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse}
// @Router /v1/insight/expense [get]
// @Router /v1/insight/income [get]
// @Router /v1/insight/transfer [get]
func (ih insightHandler) sum(fn sumFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, start, end, err := parseRange(c)
		if err != nil {
			return rangeErrorResponse(c, err)
		}

		sums, err := fn(c.Request().Context(), commonhttp.RequestOwner(c), start, end, req)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return commonhttp.RestSuccessResponse(c, http.StatusOK, toSumResponse(sums))
	}
}

// list godoc
// @Summary 	List journals per currency
// @Tags 		Insight
// @Produce		json
// @Param	X-User-ID header int true "owner id"
// @Param 	start query string true "YYYY-MM-DD"
// @Param 	end query string true "YYYY-MM-DD"
// @Param 	accounts[] query []int false "accounts on either side"
// @Success 200 {object} map[string]models.CurrencyJournals
// @Router /v1/insight/expense/journals [get]
// @Router /v1/insight/income/journals [get]
func (ih insightHandler) list(fn listFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, start, end, err := parseRange(c)
		if err != nil {
			return rangeErrorResponse(c, err)
		}

		journals, err := fn(c.Request().Context(), commonhttp.RequestOwner(c), start, end, req.Accounts)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return commonhttp.RestSuccessResponse(c, http.StatusOK, journals)
	}
}

type rangeValidationError struct{ err error }

func (e rangeValidationError) Error() string { return e.err.Error() }

// parseRange binds and validates the query and parses its dates.
func parseRange(c echo.Context) (req models.InsightRequest, start, end time.Time, err error) {
	if err = (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return req, start, end, err
	}
	if errVal := validation.ValidateStruct(req); errVal != nil {
		return req, start, end, rangeValidationError{err: errVal}
	}

	if start, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.Start); err != nil {
		return req, start, end, err
	}
	if end, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.End); err != nil {
		return req, start, end, err
	}
	if end.Before(start) {
		return req, start, end, models.GetErrMap(models.ErrKeyBadRequest, "end is before start")
	}
	return req, start, end, nil
}

func rangeErrorResponse(c echo.Context, err error) error {
	if valErr, ok := err.(rangeValidationError); ok {
		return commonhttp.RestErrorValidationResponse(c, valErr.err)
	}
	return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
}

func toSumResponse(sums map[int64]*models.CurrencySum) []models.InsightSumResponse {
	out := make([]models.InsightSumResponse, 0, len(sums))
	for _, sum := range sums {
		out = append(out, models.InsightSumResponse{
			CurrencyID:            sum.CurrencyID,
			CurrencyCode:          sum.CurrencyCode,
			CurrencySymbol:        sum.CurrencySymbol,
			CurrencyDecimalPlaces: sum.CurrencyDecimalPlaces,
			Difference:            sum.Sum.String(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyID < out[j].CurrencyID })
	return out
}
