package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common"
	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
)

//go:generate mockgen -source=operations.go -destination=mock/operations_mock.go -package=mock

// OperationsService answers insight queries over journals in [start, end].
// Expenses are reported negative, income and transfers positive.
type OperationsService interface {
	ListExpenses(ctx context.Context, owner int64, start, end time.Time, accounts []int64) (map[int64]*models.CurrencyJournals, error)
	ListIncome(ctx context.Context, owner int64, start, end time.Time, accounts []int64) (map[int64]*models.CurrencyJournals, error)
	SumExpenses(ctx context.Context, owner int64, start, end time.Time, accounts, expense []int64, currencyID *int64) (map[int64]*models.CurrencySum, error)
	SumIncome(ctx context.Context, owner int64, start, end time.Time, accounts, revenue []int64, currencyID *int64) (map[int64]*models.CurrencySum, error)
	SumTransfers(ctx context.Context, owner int64, start, end time.Time, accounts []int64, currencyID *int64) (map[int64]*models.CurrencySum, error)
}

type operations service

var _ OperationsService = (*operations)(nil)

func (ops *operations) ListExpenses(ctx context.Context, owner int64, start, end time.Time, accounts []int64) (result map[int64]*models.CurrencyJournals, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	rows, err := ops.listJournals(ctx, models.JournalFilter{
		UserID:         owner,
		Types:          []models.TransactionType{models.TransactionTypeWithdrawal},
		Start:          start,
		End:            end,
		EitherAccounts: nonEmpty(accounts),
	})
	if err != nil {
		return nil, err
	}

	return models.ListByCurrency(rows, models.Negative), nil
}

func (ops *operations) ListIncome(ctx context.Context, owner int64, start, end time.Time, accounts []int64) (result map[int64]*models.CurrencyJournals, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	rows, err := ops.listJournals(ctx, models.JournalFilter{
		UserID:         owner,
		Types:          []models.TransactionType{models.TransactionTypeDeposit},
		Start:          start,
		End:            end,
		EitherAccounts: nonEmpty(accounts),
	})
	if err != nil {
		return nil, err
	}

	return models.ListByCurrency(rows, models.Positive), nil
}

func (ops *operations) SumExpenses(ctx context.Context, owner int64, start, end time.Time, accounts, expense []int64, currencyID *int64) (result map[int64]*models.CurrencySum, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return ops.sum(ctx, models.JournalFilter{
		UserID:              owner,
		Types:               []models.TransactionType{models.TransactionTypeWithdrawal},
		Start:               start,
		End:                 end,
		SourceAccounts:      nonEmpty(accounts),
		DestinationAccounts: nonEmpty(expense),
	}, currencyID, models.Negative)
}

func (ops *operations) SumIncome(ctx context.Context, owner int64, start, end time.Time, accounts, revenue []int64, currencyID *int64) (result map[int64]*models.CurrencySum, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return ops.sum(ctx, models.JournalFilter{
		UserID:              owner,
		Types:               []models.TransactionType{models.TransactionTypeDeposit},
		Start:               start,
		End:                 end,
		SourceAccounts:      nonEmpty(revenue),
		DestinationAccounts: nonEmpty(accounts),
	}, currencyID, models.Positive)
}

func (ops *operations) SumTransfers(ctx context.Context, owner int64, start, end time.Time, accounts []int64, currencyID *int64) (result map[int64]*models.CurrencySum, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return ops.sum(ctx, models.JournalFilter{
		UserID:         owner,
		Types:          []models.TransactionType{models.TransactionTypeTransfer},
		Start:          start,
		End:            end,
		EitherAccounts: nonEmpty(accounts),
	}, currencyID, models.Positive)
}

// sum runs the native currency pass and, when a currency is given, a second
// pass over journals whose foreign currency matches. Journals found by both
// passes are counted once, as the foreign pass returned them.
func (ops *operations) sum(ctx context.Context, filter models.JournalFilter, currencyID *int64, normalize func(decimal.Decimal) decimal.Decimal) (map[int64]*models.CurrencySum, error) {
	filter.CurrencyID = currencyID
	native, err := ops.listJournals(ctx, filter)
	if err != nil {
		return nil, err
	}

	var foreign []models.JournalRow
	if currencyID != nil {
		filter.CurrencyID, filter.ForeignCurrencyID = nil, currencyID
		if foreign, err = ops.listJournals(ctx, filter); err != nil {
			return nil, err
		}
	}

	return models.SumByCurrency(models.MergeJournalPasses(native, foreign), normalize), nil
}

func (ops *operations) listJournals(ctx context.Context, filter models.JournalFilter) ([]models.JournalRow, error) {
	filter.Start, filter.End = common.StartOfDay(filter.Start), common.EndOfDay(filter.End)
	rows, err := ops.srv.sqlRepo.GetOperationsRepository().ListJournals(ctx, filter)
	if err != nil {
		return nil, checkDatabaseError(err)
	}
	return rows, nil
}

func nonEmpty(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	return ids
}
