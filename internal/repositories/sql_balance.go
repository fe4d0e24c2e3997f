package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_balance.go -destination=mock/sql_balance_mock.go -package=mock

type BalanceRepository interface {
	// GetSums sums an account's legs dated up to end for currencyID.
	GetSums(ctx context.Context, accountID int64, end time.Time, currencyID int64) (result models.BalanceSums, err error)
	GetRangeRows(ctx context.Context, accountID int64, start, end time.Time) (result []models.BalanceRangeRow, err error)
	GetPerCurrency(ctx context.Context, accountID int64, end time.Time) (result []models.CurrencyBalance, err error)
	GetLastActivities(ctx context.Context, accountIDs []int64) (result []models.LastActivity, err error)
}

type balanceRepository sqlRepo

var _ BalanceRepository = (*balanceRepository)(nil)

func (br *balanceRepository) GetSums(ctx context.Context, accountID int64, end time.Time, currencyID int64) (result models.BalanceSums, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := br.r.extractTxRead(ctx)
	err = db.QueryRowContext(ctx, queryBalanceSums, accountID, end, currencyID).Scan(&result.Native, &result.Foreign)
	return
}

func (br *balanceRepository) GetRangeRows(ctx context.Context, accountID int64, start, end time.Time) (result []models.BalanceRangeRow, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildBalanceRangeQuery(accountID, start, end)
	if err != nil {
		return nil, err
	}

	db := br.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row               models.BalanceRangeRow
			foreignCurrencyID sql.NullInt64
		)
		err = rows.Scan(&row.Date, &row.CurrencyID, &foreignCurrencyID, &row.Amount, &row.ForeignAmount)
		if err != nil {
			return nil, err
		}
		row.ForeignCurrencyID = nullInt64Ptr(foreignCurrencyID)
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (br *balanceRepository) GetPerCurrency(ctx context.Context, accountID int64, end time.Time) (result []models.CurrencyBalance, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := br.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, queryBalancePerCurrency, accountID, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			currencyID int64
			sum        decimal.Decimal
		)
		if err = rows.Scan(&currencyID, &sum); err != nil {
			return nil, err
		}
		result = append(result, models.CurrencyBalance{CurrencyID: currencyID, Balance: sum})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (br *balanceRepository) GetLastActivities(ctx context.Context, accountIDs []int64) (result []models.LastActivity, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if len(accountIDs) == 0 {
		return nil, nil
	}

	query, args, err := buildLastActivityQuery(accountIDs)
	if err != nil {
		return nil, err
	}

	db := br.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var activity models.LastActivity
		if err = rows.Scan(&activity.AccountID, &activity.Date); err != nil {
			return nil, err
		}
		result = append(result, activity)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
