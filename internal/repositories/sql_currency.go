package repositories

import (
	"context"
	"strings"

	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_currency.go -destination=mock/sql_currency_mock.go -package=mock

type CurrencyRepository interface {
	GetByID(ctx context.Context, id int64) (result *models.Currency, err error)
	GetByCode(ctx context.Context, code string) (result *models.Currency, err error)
	// GetPreference returns the raw preference value of a user.
	GetPreference(ctx context.Context, userID int64, name string) (data string, err error)
}

type currencyRepository sqlRepo

var _ CurrencyRepository = (*currencyRepository)(nil)

func scanCurrency(row rowScanner) (*models.Currency, error) {
	var c models.Currency
	if err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Symbol, &c.DecimalPlaces, &c.Enabled); err != nil {
		return nil, err
	}
	return &c, nil
}

func (cr *currencyRepository) GetByID(ctx context.Context, id int64) (result *models.Currency, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := cr.r.extractTxRead(ctx)
	return scanCurrency(db.QueryRowContext(ctx, queryCurrencyGetByID, id))
}

func (cr *currencyRepository) GetByCode(ctx context.Context, code string) (result *models.Currency, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := cr.r.extractTxRead(ctx)
	return scanCurrency(db.QueryRowContext(ctx, queryCurrencyGetByCode, strings.ToUpper(strings.TrimSpace(code))))
}

func (cr *currencyRepository) GetPreference(ctx context.Context, userID int64, name string) (data string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := cr.r.extractTxRead(ctx)
	err = db.QueryRowContext(ctx, queryPreferenceGet, userID, name).Scan(&data)
	return
}
