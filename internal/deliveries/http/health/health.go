package health

import (
	"net/http"

	"github.com/labstack/echo/v4"

	commonhttp "github.com/budhip/go-fp-ledger/internal/common/http"
)

type healthHandler struct{}

// New health handler will initialize the health/ resources endpoint
func New(app *echo.Group) {
	hh := healthHandler{}
	app.GET("/health", hh.healthCheck())
}

type (
	DoHealthCheckLivenessResponse struct {
		Kind   string `json:"kind" example:"health"`
		Status string `json:"status" example:"server is up and running"`
	}
)

// healthCheck godoc
// @Summary 	Get the status of server
// @Description	Get the status of server
// @Produce		json
// @Success 200 {object} DoHealthCheckLivenessResponse "Response indicates that the request succeeded"
// @Router /health [get]
func (th healthHandler) healthCheck() echo.HandlerFunc {
	return func(c echo.Context) error {
		return commonhttp.RestSuccessResponse(c, http.StatusOK, DoHealthCheckLivenessResponse{
			Kind:   "health",
			Status: "server is up and running",
		})
	}
}
