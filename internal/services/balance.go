package services

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/common/accounttype"
	"github.com/budhip/go-fp-ledger/internal/common/cache"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
)

//go:generate mockgen -source=balance.go -destination=mock/balance_mock.go -package=mock

const (
	operationBalance        = "balance"
	operationBalanceInRange = "balance_in_range"

	// maxParallelBalances bounds the concurrent balance queries of one request.
	maxParallelBalances = 8
)

// BalanceService computes account balances. Results are cached for the
// configured TTL and are not invalidated when transactions are written, so a
// balance may lag behind storage by up to that TTL.
type BalanceService interface {
	// Balance is the balance at the end of date in currencyID, or in the
	// account currency when currencyID is nil. The virtual balance is included.
	Balance(ctx context.Context, owner, accountID int64, date time.Time, currencyID *int64) (decimal.Decimal, error)
	// BalanceInRange seeds with the balance of the day before start and adds
	// the net activity of each day in [start, end] that had any.
	BalanceInRange(ctx context.Context, owner, accountID int64, start, end time.Time, currencyID *int64) (models.RangeBalances, error)
	BalancePerCurrency(ctx context.Context, owner, accountID int64, date time.Time) (map[int64]decimal.Decimal, error)
	BalancesByAccounts(ctx context.Context, owner int64, accountIDs []int64, date time.Time, currencyID *int64) (map[int64]decimal.Decimal, error)
	BalancesPerCurrencyByAccounts(ctx context.Context, owner int64, accountIDs []int64, date time.Time) (map[int64]map[int64]decimal.Decimal, error)
	LastActivities(ctx context.Context, owner int64, accountIDs []int64) (map[int64]time.Time, error)
}

type balance service

var _ BalanceService = (*balance)(nil)

func (bs *balance) Balance(ctx context.Context, owner, accountID int64, date time.Time, currencyID *int64) (result decimal.Decimal, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return bs.srv.balanceCache.GetOrSet(ctx, cache.GetOrSetOpts[decimal.Decimal]{
		Key: models.BalanceCacheKey(owner, accountID, date, currencyID),
		TTL: bs.srv.conf.Cache.BalanceTTL,
		Callback: func() (decimal.Decimal, error) {
			bs.srv.balanceMetrics().RecordComputation(operationBalance)
			return bs.computeBalance(ctx, owner, accountID, date, currencyID)
		},
	})
}

func (bs *balance) BalanceInRange(ctx context.Context, owner, accountID int64, start, end time.Time, currencyID *int64) (result models.RangeBalances, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	start, end = common.StartOfDay(start), common.StartOfDay(end)
	return bs.srv.rangeCache.GetOrSet(ctx, cache.GetOrSetOpts[models.RangeBalances]{
		Key: models.BalanceRangeCacheKey(owner, accountID, start, end, currencyID),
		TTL: bs.srv.conf.Cache.BalanceTTL,
		Callback: func() (models.RangeBalances, error) {
			bs.srv.balanceMetrics().RecordComputation(operationBalanceInRange)
			return bs.computeRange(ctx, owner, accountID, start, end, currencyID)
		},
	})
}

func (bs *balance) BalancePerCurrency(ctx context.Context, owner, accountID int64, date time.Time) (result map[int64]decimal.Decimal, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if _, err = bs.getAccount(ctx, owner, accountID); err != nil {
		return nil, err
	}

	rows, err := bs.srv.sqlRepo.GetBalanceRepository().GetPerCurrency(ctx, accountID, common.EndOfDay(date))
	if err != nil {
		err = checkDatabaseError(err)
		return nil, err
	}

	result = make(map[int64]decimal.Decimal, len(rows))
	for _, row := range rows {
		result[row.CurrencyID] = result[row.CurrencyID].Add(row.Balance)
	}

	return result, nil
}

func (bs *balance) BalancesByAccounts(ctx context.Context, owner int64, accountIDs []int64, date time.Time, currencyID *int64) (result map[int64]decimal.Decimal, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	var mu sync.Mutex
	result = make(map[int64]decimal.Decimal, len(accountIDs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelBalances)
	for _, id := range accountIDs {
		eg.Go(func() error {
			b, errBalance := bs.Balance(egCtx, owner, id, date, currencyID)
			if errBalance != nil {
				return errBalance
			}
			mu.Lock()
			result[id] = b
			mu.Unlock()
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func (bs *balance) BalancesPerCurrencyByAccounts(ctx context.Context, owner int64, accountIDs []int64, date time.Time) (result map[int64]map[int64]decimal.Decimal, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	var mu sync.Mutex
	result = make(map[int64]map[int64]decimal.Decimal, len(accountIDs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelBalances)
	for _, id := range accountIDs {
		eg.Go(func() error {
			balances, errBalance := bs.BalancePerCurrency(egCtx, owner, id, date)
			if errBalance != nil {
				return errBalance
			}
			mu.Lock()
			result[id] = balances
			mu.Unlock()
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// LastActivities returns the date of the newest journal per account. Accounts
// of other owners and accounts without journals are left out.
func (bs *balance) LastActivities(ctx context.Context, owner int64, accountIDs []int64) (result map[int64]time.Time, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	result = map[int64]time.Time{}
	if len(accountIDs) == 0 {
		return result, nil
	}

	owned, err := bs.srv.sqlRepo.GetAccountRepository().List(ctx, owner, accounttype.All())
	if err != nil {
		err = checkDatabaseError(err)
		return nil, err
	}
	ownedIDs := make(map[int64]struct{}, len(owned))
	for _, acc := range owned {
		ownedIDs[acc.ID] = struct{}{}
	}

	ids := make([]int64, 0, len(accountIDs))
	for _, id := range accountIDs {
		if _, ok := ownedIDs[id]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return result, nil
	}

	activities, err := bs.srv.sqlRepo.GetBalanceRepository().GetLastActivities(ctx, ids)
	if err != nil {
		err = checkDatabaseError(err)
		return nil, err
	}
	for _, activity := range activities {
		result[activity.AccountID] = activity.Date
	}

	return result, nil
}

func (bs *balance) getAccount(ctx context.Context, owner, accountID int64) (*models.Account, error) {
	acc, err := bs.srv.sqlRepo.GetAccountRepository().GetByID(ctx, owner, accountID)
	if err != nil {
		return nil, checkDatabaseError(err)
	}
	return acc, nil
}

// balanceCurrency is the requested currency, else the account currency, else
// the owner's default currency.
func (bs *balance) balanceCurrency(ctx context.Context, acc *models.Account, currencyID *int64) (int64, error) {
	if id := int64Value(currencyID); id > 0 {
		return id, nil
	}
	if id := int64Value(acc.CurrencyID); id > 0 {
		return id, nil
	}
	cur, err := bs.srv.Currency.defaultFor(ctx, bs.srv.sqlRepo, acc.UserID)
	if err != nil {
		return 0, err
	}
	return cur.ID, nil
}

func (bs *balance) computeBalance(ctx context.Context, owner, accountID int64, date time.Time, currencyID *int64) (decimal.Decimal, error) {
	acc, err := bs.getAccount(ctx, owner, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	curID, err := bs.balanceCurrency(ctx, acc, currencyID)
	if err != nil {
		return decimal.Zero, err
	}

	sums, err := bs.srv.sqlRepo.GetBalanceRepository().GetSums(ctx, accountID, common.EndOfDay(date), curID)
	if err != nil {
		return decimal.Zero, checkDatabaseError(err)
	}

	return models.PointBalance(sums, acc.VirtualBalance), nil
}

func (bs *balance) computeRange(ctx context.Context, owner, accountID int64, start, end time.Time, currencyID *int64) (models.RangeBalances, error) {
	acc, err := bs.getAccount(ctx, owner, accountID)
	if err != nil {
		return models.RangeBalances{}, err
	}
	curID, err := bs.balanceCurrency(ctx, acc, currencyID)
	if err != nil {
		return models.RangeBalances{}, err
	}

	seedDate := start.AddDate(0, 0, -1)
	seed, err := bs.Balance(ctx, owner, accountID, seedDate, &curID)
	if err != nil {
		return models.RangeBalances{}, err
	}

	rows, err := bs.srv.sqlRepo.GetBalanceRepository().GetRangeRows(ctx, accountID, start, common.EndOfDay(end))
	if err != nil {
		return models.RangeBalances{}, checkDatabaseError(err)
	}

	return models.WalkRange(seedDate, seed, rows, curID), nil
}
