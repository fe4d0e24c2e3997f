package services

import (
	"context"
	"errors"
	"strings"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
	"github.com/budhip/go-fp-ledger/internal/repositories"
)

//go:generate mockgen -source=currency.go -destination=mock/currency_mock.go -package=mock

type CurrencyResolver interface {
	// Find looks the currency up by id, then by code. It returns nil when neither resolves.
	Find(ctx context.Context, currencyID *int64, code string) (*models.Currency, error)
	// Default is the owner's preferred currency, falling back to the configured default code.
	Default(ctx context.Context, owner int64) (*models.Currency, error)
	// Resolve is Find falling back to Default.
	Resolve(ctx context.Context, owner int64, currencyID *int64, code string) (*models.Currency, error)
}

type currency service

var _ CurrencyResolver = (*currency)(nil)

func (cs *currency) Find(ctx context.Context, currencyID *int64, code string) (result *models.Currency, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return cs.find(ctx, cs.srv.sqlRepo, currencyID, code)
}

func (cs *currency) Default(ctx context.Context, owner int64) (result *models.Currency, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return cs.defaultFor(ctx, cs.srv.sqlRepo, owner)
}

func (cs *currency) Resolve(ctx context.Context, owner int64, currencyID *int64, code string) (result *models.Currency, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return cs.resolve(ctx, cs.srv.sqlRepo, owner, currencyID, code)
}

func (cs *currency) find(ctx context.Context, repo repositories.SQLRepository, currencyID *int64, code string) (*models.Currency, error) {
	currencyRepo := repo.GetCurrencyRepository()

	if id := int64Value(currencyID); id > 0 {
		c, err := currencyRepo.GetByID(ctx, id)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, common.ErrNoRows) {
			return nil, checkDatabaseError(err)
		}
	}

	if code = strings.TrimSpace(code); code != "" {
		c, err := currencyRepo.GetByCode(ctx, code)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, common.ErrNoRows) {
			return nil, checkDatabaseError(err)
		}
	}

	return nil, nil
}

func (cs *currency) defaultFor(ctx context.Context, repo repositories.SQLRepository, owner int64) (*models.Currency, error) {
	currencyRepo := repo.GetCurrencyRepository()

	preferred, err := currencyRepo.GetPreference(ctx, owner, models.PreferenceCurrency)
	if err != nil && !errors.Is(err, common.ErrNoRows) {
		return nil, checkDatabaseError(err)
	}
	if preferred != "" {
		c, err := cs.find(ctx, repo, nil, preferred)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
		log.Warn(ctx, "[SERVICE] preferred currency not found, using configured default",
			log.Int64("owner", owner), log.String("code", preferred))
	}

	c, err := cs.find(ctx, repo, nil, cs.srv.conf.Currency.DefaultCode)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, common.NewConfigurationError("resolve default currency", common.ErrInvalidCurrency)
	}
	return c, nil
}

func (cs *currency) resolve(ctx context.Context, repo repositories.SQLRepository, owner int64, currencyID *int64, code string) (*models.Currency, error) {
	c, err := cs.find(ctx, repo, currencyID, code)
	if err != nil || c != nil {
		return c, err
	}
	return cs.defaultFor(ctx, repo, owner)
}
