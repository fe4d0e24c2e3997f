package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common"
)

// BalanceSums is the result of the point balance query for one account.
// Native is the sum of legs in the currency, Foreign the sum of foreign amounts
// in the currency on legs whose own currency differs.
type BalanceSums struct {
	Native  decimal.Decimal
	Foreign decimal.Decimal
}

// PointBalance combines the leg sums with the account's virtual balance.
func PointBalance(sums BalanceSums, virtual *decimal.Decimal) decimal.Decimal {
	balance := sums.Native.Add(sums.Foreign)
	if virtual != nil {
		balance = balance.Add(*virtual)
	}
	return balance
}

// BalanceRangeRow is one day of leg activity for an account, grouped by
// currency and foreign currency.
type BalanceRangeRow struct {
	Date              time.Time
	CurrencyID        int64
	ForeignCurrencyID *int64
	Amount            decimal.Decimal
	ForeignAmount     decimal.Decimal
}

// Delta returns the contribution of the row to a balance kept in currencyID.
// A zero currencyID accepts every native amount. A matching foreign currency
// takes precedence over the native amount unless it is the native currency.
func (r BalanceRangeRow) Delta(currencyID int64) decimal.Decimal {
	delta := decimal.Zero
	if currencyID == 0 || r.CurrencyID == currencyID {
		delta = r.Amount
	}
	if r.ForeignCurrencyID != nil && *r.ForeignCurrencyID == currencyID && r.CurrencyID != currencyID {
		delta = r.ForeignAmount
	}
	return delta
}

type DayBalance struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// RangeBalances is an ordered date to balance map. Dates are ISO formatted and
// kept ascending.
type RangeBalances struct {
	Entries []DayBalance `json:"entries"`
}

// Set stores balance for date, keeping the entries sorted.
func (r *RangeBalances) Set(date string, balance decimal.Decimal) {
	i := sort.Search(len(r.Entries), func(i int) bool { return r.Entries[i].Date >= date })
	if i < len(r.Entries) && r.Entries[i].Date == date {
		r.Entries[i].Balance = balance
		return
	}
	r.Entries = append(r.Entries, DayBalance{})
	copy(r.Entries[i+1:], r.Entries[i:])
	r.Entries[i] = DayBalance{Date: date, Balance: balance}
}

func (r RangeBalances) Get(date string) (decimal.Decimal, bool) {
	i := sort.Search(len(r.Entries), func(i int) bool { return r.Entries[i].Date >= date })
	if i < len(r.Entries) && r.Entries[i].Date == date {
		return r.Entries[i].Balance, true
	}
	return decimal.Zero, false
}

func (r RangeBalances) Len() int {
	return len(r.Entries)
}

func (r RangeBalances) Dates() []string {
	dates := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		dates = append(dates, e.Date)
	}
	return dates
}

// WalkRange turns daily activity into cumulative balances. The seed is the
// balance at the end of seedDate; rows must be ordered by date ascending.
// Every date with a row gets an entry, even when its delta in currencyID is zero.
func WalkRange(seedDate time.Time, seed decimal.Decimal, rows []BalanceRangeRow, currencyID int64) RangeBalances {
	var out RangeBalances
	out.Set(common.FormatDate(seedDate), seed)

	current := seed
	for _, row := range rows {
		current = current.Add(row.Delta(currencyID))
		out.Set(common.FormatDate(row.Date), current)
	}
	return out
}

func currencyKey(currencyID *int64) int64 {
	if currencyID == nil {
		return 0
	}
	return *currencyID
}

// BalanceCacheKey identifies a point balance computation of an owner's account.
func BalanceCacheKey(owner, accountID int64, date time.Time, currencyID *int64) string {
	return fmt.Sprintf("balance:%d:%d:%s:%d", owner, accountID, common.FormatDate(date), currencyKey(currencyID))
}

// BalanceRangeCacheKey identifies a range balance computation of an owner's account.
func BalanceRangeCacheKey(owner, accountID int64, start, end time.Time, currencyID *int64) string {
	return fmt.Sprintf("balance-in-range:%d:%d:%d:%s:%s", owner, accountID, currencyKey(currencyID), common.FormatDate(start), common.FormatDate(end))
}

// CurrencyBalance is the per currency sum of an account's legs.
type CurrencyBalance struct {
	CurrencyID int64           `json:"currencyId"`
	Balance    decimal.Decimal `json:"balance"`
}

type AccountBalance struct {
	AccountID int64           `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

type LastActivity struct {
	AccountID int64     `json:"accountId"`
	Date      time.Time `json:"date"`
}

type BalanceRequest struct {
	AccountID  int64  `param:"id" validate:"required"`
	Date       string `query:"date" validate:"omitempty,date"`
	CurrencyID *int64 `query:"currency_id"`
}

type BalanceRangeRequest struct {
	AccountID  int64  `param:"id" validate:"required"`
	Start      string `query:"start" validate:"required,date"`
	End        string `query:"end" validate:"required,date"`
	CurrencyID *int64 `query:"currency_id"`
}

type BalanceResponse struct {
	AccountID  int64  `json:"accountId"`
	Date       string `json:"date"`
	CurrencyID *int64 `json:"currencyId"`
	Balance    string `json:"balance"`
}

type BalanceRangeResponse struct {
	AccountID  int64        `json:"accountId"`
	CurrencyID *int64       `json:"currencyId"`
	Balances   []DayBalance `json:"balances"`
}
