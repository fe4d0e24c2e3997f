package repositories

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/models"
	"github.com/budhip/go-fp-ledger/internal/monitoring"
)

//go:generate mockgen -source=sql_operations.go -destination=mock/sql_operations_mock.go -package=mock

type OperationsRepository interface {
	// ListJournals returns one row per journal matching the filter, newest first.
	ListJournals(ctx context.Context, filter models.JournalFilter) (result []models.JournalRow, err error)
}

type operationsRepository sqlRepo

var _ OperationsRepository = (*operationsRepository)(nil)

func (or *operationsRepository) ListJournals(ctx context.Context, filter models.JournalFilter) (result []models.JournalRow, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	query, args, err := buildJournalListQuery(filter)
	if err != nil {
		return nil, err
	}

	db := or.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row                  models.JournalRow
			foreignCurrencyID    sql.NullInt64
			foreignName          sql.NullString
			foreignSymbol        sql.NullString
			foreignCode          sql.NullString
			foreignDecimalPlaces sql.NullInt32
			foreignAmount        decimal.NullDecimal
			sourceIBAN           sql.NullString
			destinationIBAN      sql.NullString
			budgetName           sql.NullString
			categoryName         sql.NullString
			tags                 pq.StringArray
		)
		err = rows.Scan(
			&row.TransactionJournalID,
			&row.TransactionGroupID,
			&row.Date,
			&row.Description,
			&row.CurrencyID,
			&row.CurrencyName,
			&row.CurrencySymbol,
			&row.CurrencyCode,
			&row.CurrencyDecimalPlaces,
			&row.Amount,
			&foreignCurrencyID,
			&foreignName,
			&foreignSymbol,
			&foreignCode,
			&foreignDecimalPlaces,
			&foreignAmount,
			&row.SourceAccountID,
			&row.SourceAccountName,
			&sourceIBAN,
			&row.DestinationAccountID,
			&row.DestinationAccountName,
			&destinationIBAN,
			&budgetName,
			&categoryName,
			&tags,
		)
		if err != nil {
			return nil, err
		}

		row.ForeignCurrencyID = nullInt64Ptr(foreignCurrencyID)
		row.ForeignCurrencyName = foreignName.String
		row.ForeignCurrencySymbol = foreignSymbol.String
		row.ForeignCurrencyCode = foreignCode.String
		row.ForeignCurrencyDecimalPlaces = int(foreignDecimalPlaces.Int32)
		row.ForeignAmount = nullDecimalPtr(foreignAmount)
		row.SourceAccountIBAN = nullStringPtr(sourceIBAN)
		row.DestinationAccountIBAN = nullStringPtr(destinationIBAN)
		row.BudgetName = nullStringPtr(budgetName)
		row.CategoryName = nullStringPtr(categoryName)
		row.Tags = tags

		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
