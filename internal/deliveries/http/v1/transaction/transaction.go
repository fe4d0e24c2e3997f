package transaction

import (
	"net/http"

	"github.com/labstack/echo/v4"

	commonhttp "github.com/budhip/go-fp-ledger/internal/common/http"
	"github.com/budhip/go-fp-ledger/internal/common/validation"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/services"
)

type transactionHandler struct {
	groupService services.TransactionGroupService
}

type groupIDRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

// New transaction handler will initialize the transactions/ resources endpoint
func New(app *echo.Group, groupSrv services.TransactionGroupService) {
	th := transactionHandler{groupService: groupSrv}

	transaction := app.Group("/transactions")
	transaction.POST("", th.storeGroup())
	transaction.GET("/:id", th.getGroup())
	transaction.DELETE("/:id", th.deleteGroup())
}

// @Summary 	Store a transaction group
// @Description Store a group of journals of one type. Accounts given by name are looked up and created when the type allows it. Nothing is stored when any journal is invalid.
// @Tags 		Transactions
// @Accept		json
// @Produce		json
// @Param	X-User-ID header int true "owner id"
// @Param 	payload body models.StoreTransactionGroupRequest true "transaction group"
// @Success 201 {object} models.TransactionGroup
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error"
// @Failure 422 {object} http.RestErrorResponseModel "A journal failed validation"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error"
// @Router /v1/transactions [post]
func (th transactionHandler) storeGroup() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.StoreTransactionGroupRequest)
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

		group, err := th.groupService.Store(c.Request().Context(), commonhttp.RequestOwner(c), in)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return commonhttp.RestSuccessResponse(c, http.StatusCreated, group)
	}
}

// @Summary 	Get a transaction group
// @Tags 		Transactions
// @Produce		json
// @Param	X-User-ID header int true "owner id"
// @Param 	id path int true "group id"
// @Success 200 {object} models.TransactionGroup
// @Failure 404 {object} http.RestErrorResponseModel "Group not found for the owner"
// @Router /v1/transactions/{id} [get]
func (th transactionHandler) getGroup() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(groupIDRequest)
		if err := c.Bind(req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, err)
		}

		group, err := th.groupService.Get(c.Request().Context(), commonhttp.RequestOwner(c), req.ID)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return commonhttp.RestSuccessResponse(c, http.StatusOK, group)
	}
}

// @Summary 	Delete a transaction group
// @Tags 		Transactions
// @Param	X-User-ID header int true "owner id"
// @Param 	id path int true "group id"
// @Success 204
// @Failure 404 {object} http.RestErrorResponseModel "Group not found for the owner"
// @Router /v1/transactions/{id} [delete]
func (th transactionHandler) deleteGroup() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(groupIDRequest)
		if err := c.Bind(req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, err)
		}

		if err := th.groupService.Delete(c.Request().Context(), commonhttp.RequestOwner(c), req.ID); err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
