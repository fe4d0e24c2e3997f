package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalRow is one journal as seen from its source leg, joined with the
// currency, account, budget, category and tag information used by insight
// queries.
type JournalRow struct {
	TransactionJournalID         int64
	TransactionGroupID           int64
	Date                         time.Time
	Description                  string
	CurrencyID                   int64
	CurrencyName                 string
	CurrencySymbol               string
	CurrencyCode                 string
	CurrencyDecimalPlaces        int
	Amount                       decimal.Decimal
	ForeignCurrencyID            *int64
	ForeignCurrencyName          string
	ForeignCurrencySymbol        string
	ForeignCurrencyCode          string
	ForeignCurrencyDecimalPlaces int
	ForeignAmount                *decimal.Decimal
	SourceAccountID              int64
	SourceAccountName            string
	SourceAccountIBAN            *string
	DestinationAccountID         int64
	DestinationAccountName       string
	DestinationAccountIBAN       *string
	BudgetName                   *string
	CategoryName                 *string
	Tags                         []string
}

// MergeJournalPasses merges the native currency pass with the foreign currency
// pass keyed by journal id. On collision the foreign pass row is kept. Foreign
// rows come first, followed by the native rows that were not overwritten.
func MergeJournalPasses(native, foreign []JournalRow) []JournalRow {
	seen := make(map[int64]struct{}, len(foreign))
	merged := make([]JournalRow, 0, len(native)+len(foreign))
	for _, row := range foreign {
		if _, ok := seen[row.TransactionJournalID]; ok {
			continue
		}
		seen[row.TransactionJournalID] = struct{}{}
		merged = append(merged, row)
	}
	for _, row := range native {
		if _, ok := seen[row.TransactionJournalID]; ok {
			continue
		}
		seen[row.TransactionJournalID] = struct{}{}
		merged = append(merged, row)
	}
	return merged
}

type CurrencySum struct {
	Sum                   decimal.Decimal `json:"sum"`
	CurrencyID            int64           `json:"currencyId"`
	CurrencyName          string          `json:"currencyName"`
	CurrencySymbol        string          `json:"currencySymbol"`
	CurrencyCode          string          `json:"currencyCode"`
	CurrencyDecimalPlaces int             `json:"currencyDecimalPlaces"`
}

// SumByCurrency adds each journal's normalized amount to its currency and its
// normalized foreign amount to the foreign currency.
func SumByCurrency(rows []JournalRow, normalize func(decimal.Decimal) decimal.Decimal) map[int64]*CurrencySum {
	out := map[int64]*CurrencySum{}
	for _, row := range rows {
		sum, ok := out[row.CurrencyID]
		if !ok {
			sum = &CurrencySum{
				CurrencyID:            row.CurrencyID,
				CurrencyName:          row.CurrencyName,
				CurrencySymbol:        row.CurrencySymbol,
				CurrencyCode:          row.CurrencyCode,
				CurrencyDecimalPlaces: row.CurrencyDecimalPlaces,
			}
			out[row.CurrencyID] = sum
		}
		sum.Sum = sum.Sum.Add(normalize(row.Amount))

		if row.ForeignCurrencyID == nil || *row.ForeignCurrencyID == 0 || row.ForeignAmount == nil {
			continue
		}
		foreign, ok := out[*row.ForeignCurrencyID]
		if !ok {
			foreign = &CurrencySum{
				CurrencyID:            *row.ForeignCurrencyID,
				CurrencyName:          row.ForeignCurrencyName,
				CurrencySymbol:        row.ForeignCurrencySymbol,
				CurrencyCode:          row.ForeignCurrencyCode,
				CurrencyDecimalPlaces: row.ForeignCurrencyDecimalPlaces,
			}
			out[*row.ForeignCurrencyID] = foreign
		}
		foreign.Sum = foreign.Sum.Add(normalize(*row.ForeignAmount))
	}
	return out
}

type JournalDetail struct {
	Amount                 decimal.Decimal `json:"amount"`
	Date                   time.Time       `json:"date"`
	TransactionJournalID   int64           `json:"transactionJournalId"`
	TransactionGroupID     int64           `json:"transactionGroupId"`
	Description            string          `json:"description"`
	BudgetName             *string         `json:"budgetName"`
	CategoryName           *string         `json:"categoryName"`
	SourceAccountID        int64           `json:"sourceAccountId"`
	SourceAccountName      string          `json:"sourceAccountName"`
	SourceAccountIBAN      *string         `json:"sourceAccountIban"`
	DestinationAccountID   int64           `json:"destinationAccountId"`
	DestinationAccountName string          `json:"destinationAccountName"`
	DestinationAccountIBAN *string         `json:"destinationAccountIban"`
	Tags                   []string        `json:"tags"`
}

type CurrencyJournals struct {
	CurrencyID            int64                   `json:"currencyId"`
	CurrencyName          string                  `json:"currencyName"`
	CurrencySymbol        string                  `json:"currencySymbol"`
	CurrencyCode          string                  `json:"currencyCode"`
	CurrencyDecimalPlaces int                     `json:"currencyDecimalPlaces"`
	TransactionJournals   map[int64]JournalDetail `json:"transactionJournals"`
}

// ListByCurrency projects rows per currency and journal with normalized amounts.
func ListByCurrency(rows []JournalRow, normalize func(decimal.Decimal) decimal.Decimal) map[int64]*CurrencyJournals {
	out := map[int64]*CurrencyJournals{}
	for _, row := range rows {
		group, ok := out[row.CurrencyID]
		if !ok {
			group = &CurrencyJournals{
				CurrencyID:            row.CurrencyID,
				CurrencyName:          row.CurrencyName,
				CurrencySymbol:        row.CurrencySymbol,
				CurrencyCode:          row.CurrencyCode,
				CurrencyDecimalPlaces: row.CurrencyDecimalPlaces,
				TransactionJournals:   map[int64]JournalDetail{},
			}
			out[row.CurrencyID] = group
		}
		group.TransactionJournals[row.TransactionJournalID] = JournalDetail{
			Amount:                 normalize(row.Amount),
			Date:                   row.Date,
			TransactionJournalID:   row.TransactionJournalID,
			TransactionGroupID:     row.TransactionGroupID,
			Description:            row.Description,
			BudgetName:             row.BudgetName,
			CategoryName:           row.CategoryName,
			SourceAccountID:        row.SourceAccountID,
			SourceAccountName:      row.SourceAccountName,
			SourceAccountIBAN:      row.SourceAccountIBAN,
			DestinationAccountID:   row.DestinationAccountID,
			DestinationAccountName: row.DestinationAccountName,
			DestinationAccountIBAN: row.DestinationAccountIBAN,
			Tags:                   row.Tags,
		}
	}
	return out
}

// JournalFilter selects journals for insight queries. Nil slices mean no filter.
type JournalFilter struct {
	UserID              int64
	Types               []TransactionType
	Start               time.Time
	End                 time.Time
	SourceAccounts      []int64
	DestinationAccounts []int64
	// EitherAccounts matches journals touching the accounts on any side.
	EitherAccounts    []int64
	CurrencyID        *int64
	ForeignCurrencyID *int64
}

type InsightRequest struct {
	Start        string  `query:"start" validate:"required,date"`
	End          string  `query:"end" validate:"required,date"`
	Accounts     []int64 `query:"accounts[]"`
	Counterparts []int64 `query:"counterparts[]"`
	CurrencyID   *int64  `query:"currency_id"`
}

type InsightSumResponse struct {
	CurrencyID            int64  `json:"currencyId"`
	CurrencyCode          string `json:"currencyCode"`
	CurrencySymbol        string `json:"currencySymbol"`
	CurrencyDecimalPlaces int    `json:"currencyDecimalPlaces"`
	Difference            string `json:"difference"`
}
