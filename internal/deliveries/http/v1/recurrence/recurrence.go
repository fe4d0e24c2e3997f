package recurrence

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

type recurrenceHandler struct {
	recurrenceService services.RecurrenceService
	now               func() time.Time
}

type recurrenceIDRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

type materializeRequest struct {
	ID   int64  `param:"id" validate:"required,min=1"`
	Date string `query:"date" validate:"omitempty,date"`
}

// New recurrence handler will initialize the recurrences/ resources endpoint
func New(app *echo.Group, recurrenceSrv services.RecurrenceService) {
	rh := recurrenceHandler{recurrenceService: recurrenceSrv, now: time.Now}

	recurrence := app.Group("/recurrences")
	recurrence.POST("", rh.storeRecurrence())
	recurrence.GET("/:id", rh.getRecurrence())
	recurrence.PUT("/:id", rh.updateRecurrence())
	recurrence.DELETE("/:id", rh.deleteRecurrence())
	recurrence.POST("/:id/materialize", rh.materialize())
}

// @Summary 	Store a recurrence
// @Tags 		Recurrences
// @Accept		json
// @Produce		json
// @Param	X-User-ID header int true "owner id"
// @Param 	payload body models.StoreRecurrenceRequest true "recurrence"
// @Success 201 {object} models.Recurrence
// @Failure 422 {object} http.RestErrorResponseModel "Invalid repetition or template"
// @Router /v1/recurrences [post]
func (rh recurrenceHandler) storeRecurrence() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.StoreRecurrenceRequest)
		if err := c.Bind(req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, err)
		}

		in, err := req.ToStoreIn()
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		rec, err := rh.recurrenceService.Store(c.Request().Context(), commonhttp.RequestOwner(c), in)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return commonhttp.RestSuccessResponse(c, http.StatusCreated, rec)
	}
}

// @Summary 	Get a recurrence
// @Tags 		Recurrences
// @Produce		json
// @Param	X-User-ID header int true "owner id"
// @Param 	id path int true "recurrence id"
// @Success 200 {object} models.Recurrence
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/recurrences/{id} [get]
func (rh recurrenceHandler) getRecurrence() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(recurrenceIDRequest)
		if err := c.Bind(req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, err)
		}

		rec, err := rh.recurrenceService.Get(c.Request().Context(), commonhttp.RequestOwner(c), req.ID)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return commonhttp.RestSuccessResponse(c, http.StatusOK, rec)
	}
}

// @Summary 	Update a recurrence
// @Description Patches the given fields. repetitions and transactions, when present, replace the stored ones.
// @Tags 		Recurrences
// @Accept		json
// @Produce		json
// @Param	X-User-ID header int true "owner id"
// @Param 	id path int true "recurrence id"
// @Param 	payload body models.UpdateRecurrenceRequest true "fields to change"
// @Success 200 {object} models.Recurrence
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 422 {object} http.RestErrorResponseModel
// @Router /v1/recurrences/{id} [put]
func (rh recurrenceHandler) updateRecurrence() echo.HandlerFunc {
	return func(c echo.Context) error {
		var path recurrenceIDRequest
		if err := (&echo.DefaultBinder{}).BindPathParams(c, &path); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		req := new(models.UpdateRecurrenceRequest)
		if err := c.Bind(req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, err)
		}

		in, err := req.ToUpdateIn()
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		rec, err := rh.recurrenceService.Update(c.Request().Context(), commonhttp.RequestOwner(c), path.ID, in)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return commonhttp.RestSuccessResponse(c, http.StatusOK, rec)
	}
}

// @Summary 	Delete a recurrence
// @Tags 		Recurrences
// @Param	X-User-ID header int true "owner id"
// @Param 	id path int true "recurrence id"
// @Success 204
// @Failure 404 {object} http.RestErrorResponseModel
// @Router /v1/recurrences/{id} [delete]
func (rh recurrenceHandler) deleteRecurrence() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(recurrenceIDRequest)
		if err := c.Bind(req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, err)
		}

		if err := rh.recurrenceService.Delete(c.Request().Context(), commonhttp.RequestOwner(c), req.ID); err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary 	Materialize one occurrence
// @Description Creates the transaction group of the recurrence for date, today when omitted.
// @Tags 		Recurrences
// @Produce		json
// @Param	X-User-ID header int true "owner id"
// @Param 	id path int true "recurrence id"
// @Param 	date query string false "YYYY-MM-DD"
// @Success 201 {object} models.TransactionGroup
// @Failure 404 {object} http.RestErrorResponseModel
// @Failure 409 {object} http.RestErrorResponseModel "Not an occurrence, inactive or already materialized"
// @Router /v1/recurrences/{id}/materialize [post]
func (rh recurrenceHandler) materialize() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(materializeRequest)
		binder := &echo.DefaultBinder{}
		if err := binder.BindPathParams(c, req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := binder.BindQueryParams(c, req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, err)
		}

		date := common.StartOfDay(rh.now())
		if req.Date != "" {
			parsed, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, req.Date)
			if err != nil {
				return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
			}
			date = parsed
		}

		group, err := rh.recurrenceService.Materialize(c.Request().Context(), commonhttp.RequestOwner(c), req.ID, date)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return commonhttp.RestSuccessResponse(c, http.StatusCreated, group)
	}
}
