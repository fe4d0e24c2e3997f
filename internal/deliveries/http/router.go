package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/budhip/go-fp-ledger/internal/common/graceful"
	commonhttp "github.com/budhip/go-fp-ledger/internal/common/http"
	"github.com/budhip/go-fp-ledger/internal/common/http/middleware"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/common/metrics"
	"github.com/budhip/go-fp-ledger/internal/config"
	"github.com/budhip/go-fp-ledger/internal/deliveries/http/health"
	"github.com/budhip/go-fp-ledger/internal/services"

	v1account "github.com/budhip/go-fp-ledger/internal/deliveries/http/v1/account"
	v1accountBalance "github.com/budhip/go-fp-ledger/internal/deliveries/http/v1/account_balances"
	v1insight "github.com/budhip/go-fp-ledger/internal/deliveries/http/v1/insight"
	v1recurrence "github.com/budhip/go-fp-ledger/internal/deliveries/http/v1/recurrence"
	v1transaction "github.com/budhip/go-fp-ledger/internal/deliveries/http/v1/transaction"

	// for swagger docs
	_ "github.com/budhip/go-fp-ledger/docs"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		if err := s.e.Start(s.addr); err != nil && err != nethttp.ErrServerClosed {
			log.Errorf(context.Background(), "[STARTUP] HTTP server error: %v", err)
			return err
		}
		return nil
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// Handler exposes the router for in-process tests.
func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// @title GO FP LEDGER API DOCUMENTATION
// @version 1.0
// @description Double entry personal finance ledger: accounts, transaction groups, balances, recurrences and insight sums.

// @host localhost:9567
// @BasePath /api
// @schemes http
func NewHTTPServer(
	conf config.Config,
	nr *newrelic.Application,
	accountService services.AccountService,
	balanceService services.BalanceService,
	transactionGroupService services.TransactionGroupService,
	recurrenceService services.RecurrenceService,
	operationsService services.OperationsService,
) *svc {
	app := echo.New()
	app.HideBanner = true

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())
	if conf.App.HTTPTimeout > 0 {
		app.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{Timeout: conf.App.HTTPTimeout}))
	}

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", log.CorrelationID(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(metrics.FlattenName(conf.App.Name)))
	app.GET("/metrics", echoprometheus.NewHandler())

	// swagger
	app.GET("/swagger/*", echoSwagger.WrapHandler)

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1", m.Owner())
	v1account.New(v1Group, accountService)
	v1accountBalance.New(v1Group, balanceService)
	v1transaction.New(v1Group, transactionGroupService)
	v1recurrence.New(v1Group, recurrenceService)
	v1insight.New(v1Group, operationsService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
