package account

import (
	"net/http"

	"github.com/labstack/echo/v4"

	commonhttp "github.com/budhip/go-fp-ledger/internal/common/http"
	"github.com/budhip/go-fp-ledger/internal/common/validation"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/services"
)

type accountHandler struct {
	accountService services.AccountService
}

// New account handler will initialize the accounts/ resources endpoint
func New(app *echo.Group, accountSrv services.AccountService) {
	ah := accountHandler{
		accountService: accountSrv,
	}
	account := app.Group("/accounts")
	account.POST("", ah.createAccount())
	account.GET("", ah.listAccounts())
	account.GET("/:id", ah.getAccount())
}

type getAccountRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

// @Summary 	Create Account
// @Description Create a new account, or return the existing one with the same name and type
// @Tags 		Accounts
// @Accept		json
// @Produce		json
// @Param	X-User-ID header int true "owner id"
// @Param 	payload body models.CreateAccountRequest true "A JSON object containing create account payload"
// @Success 201 {object} models.AccountResponse
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error"
// @Router /v1/accounts [post]
func (ah accountHandler) createAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.CreateAccountRequest)
		if err := c.Bind(req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, err)
		}

		in, err := req.ToCreateAccountIn()
		if err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		res, err := ah.accountService.Create(c.Request().Context(), commonhttp.RequestOwner(c), in)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return commonhttp.RestSuccessResponse(c, http.StatusCreated, res.ToResponse())
	}
}

// @Summary 	List accounts
// @Description List the accounts of the owner. type is a type identifier such as asset or liabilities, or a full type name
// @Tags 		Accounts
// @Produce		json
// @Param	X-User-ID header int true "owner id"
// @Param	type query string false "account type identifier"
// @Success 200 {object} http.RestTotalRowResponseModel{contents=[]models.AccountResponse}
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error"
// @Router /v1/accounts [get]
func (ah accountHandler) listAccounts() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ListAccountRequest
		if err := c.Bind(&req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		accounts, err := ah.accountService.List(c.Request().Context(), commonhttp.RequestOwner(c), req.Type)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		out := make([]models.AccountResponse, 0, len(accounts))
		for _, acc := range accounts {
			out = append(out, acc.ToResponse())
		}
		return commonhttp.RestSuccessResponseListWithTotalRows(c, out, len(out))
	}
}

// @Summary 	Get one account
// @Tags 		Accounts
// @Produce		json
// @Param	X-User-ID header int true "owner id"
// @Param 	id path int true "account id"
// @Success 200 {object} models.AccountResponse
// @Failure 404 {object} http.RestErrorResponseModel "Account not found for the owner"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error"
// @Router /v1/accounts/{id} [get]
func (ah accountHandler) getAccount() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(getAccountRequest)
		if err := c.Bind(req); err != nil {
			return commonhttp.RestErrorResponse(c, http.StatusBadRequest, err)
		}
		if err := validation.ValidateStruct(req); err != nil {
			return commonhttp.RestErrorValidationResponse(c, err)
		}

		result, err := ah.accountService.GetByID(c.Request().Context(), commonhttp.RequestOwner(c), req.ID)
		if err != nil {
			return commonhttp.RestErrorResponse(c, commonhttp.StatusCode(err), err)
		}

		return commonhttp.RestSuccessResponse(c, http.StatusOK, result.ToResponse())
	}
}
