package services

import (
	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common/accounttype"
	"github.com/budhip/go-fp-ledger/internal/common/cache"
	"github.com/budhip/go-fp-ledger/internal/common/idgenerator"
	"github.com/budhip/go-fp-ledger/internal/common/metrics"
	"github.com/budhip/go-fp-ledger/internal/common/retry"
	"github.com/budhip/go-fp-ledger/internal/config"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	balanceCache cache.Client[decimal.Decimal]
	rangeCache   cache.Client[models.RangeBalances]

	accountTypes *accounttype.Registry
	retryer      retry.Retryer
	idgenerator  idgenerator.Generator
	metrics      metrics.Metrics

	common service

	Account          *account
	Currency         *currency
	TransactionGroup *transactionGroup
	Balance          *balance
	Recurrence       *recurrence
	Operations       *operations
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	balanceCache cache.Client[decimal.Decimal],
	rangeCache cache.Client[models.RangeBalances],
	retryer retry.Retryer,
	idgenerator idgenerator.Generator,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:         conf,
		sqlRepo:      sqlRepo,
		cacheRepo:    cacheRepo,
		balanceCache: balanceCache,
		rangeCache:   rangeCache,
		accountTypes: accounttype.NewRegistry(conf.AccountTypes),
		retryer:      retryer,
		idgenerator:  idgenerator,
		metrics:      metrics,
	}
	srv.common.srv = srv
	srv.Account = (*account)(&srv.common)
	srv.Currency = (*currency)(&srv.common)
	srv.TransactionGroup = (*transactionGroup)(&srv.common)
	srv.Balance = (*balance)(&srv.common)
	srv.Recurrence = (*recurrence)(&srv.common)
	srv.Operations = (*operations)(&srv.common)

	return srv
}

// AccountTypes exposes the compatibility registry built from configuration.
func (s *Services) AccountTypes() *accounttype.Registry {
	return s.accountTypes
}
