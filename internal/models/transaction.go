package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common"
)

type TransactionType string

const (
	TransactionTypeWithdrawal      TransactionType = "Withdrawal"
	TransactionTypeDeposit         TransactionType = "Deposit"
	TransactionTypeTransfer        TransactionType = "Transfer"
	TransactionTypeOpeningBalance  TransactionType = "Opening balance"
	TransactionTypeReconciliation  TransactionType = "Reconciliation"
	TransactionTypeLiabilityCredit TransactionType = "Liability credit"
)

var transactionTypes = []TransactionType{
	TransactionTypeWithdrawal,
	TransactionTypeDeposit,
	TransactionTypeTransfer,
	TransactionTypeOpeningBalance,
	TransactionTypeReconciliation,
	TransactionTypeLiabilityCredit,
}

func (t TransactionType) String() string {
	return string(t)
}

// ParseTransactionType accepts any casing, e.g. "withdrawal" or "Opening Balance".
func ParseTransactionType(value string) (TransactionType, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	for _, t := range transactionTypes {
		if strings.ToLower(string(t)) == key {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown transaction type %q", common.ErrValidation, value)
}

// Journal meta keys.
const (
	JournalMetaRecurrenceID   = "recurrence_id"
	JournalMetaRecurrenceDate = "recurrence_date"
	JournalMetaPiggyBankID    = "piggy_bank_id"
)

type TransactionGroup struct {
	ID        int64                `json:"id"`
	UserID    int64                `json:"userId"`
	Title     *string              `json:"title"`
	Journals  []TransactionJournal `json:"journals"`
	CreatedAt time.Time            `json:"createdAt"`
}

type TransactionJournal struct {
	ID                 int64             `json:"id"`
	UserID             int64             `json:"userId"`
	TransactionGroupID int64             `json:"transactionGroupId"`
	TransactionTypeID  int64             `json:"transactionTypeId"`
	Type               TransactionType   `json:"type"`
	CurrencyID         int64             `json:"currencyId"`
	ForeignCurrencyID  *int64            `json:"foreignCurrencyId"`
	Description        string            `json:"description"`
	Date               time.Time         `json:"date"`
	Order              int               `json:"order"`
	BudgetID           *int64            `json:"budgetId"`
	CategoryID         *int64            `json:"categoryId"`
	Tags               []string          `json:"tags"`
	Notes              *string           `json:"notes"`
	Meta               map[string]string `json:"meta,omitempty"`
	Transactions       []Transaction     `json:"transactions"`
}

// Transaction is one leg of a journal.
type Transaction struct {
	ID                   int64            `json:"id"`
	TransactionJournalID int64            `json:"transactionJournalId"`
	AccountID            int64            `json:"accountId"`
	CurrencyID           int64            `json:"currencyId"`
	Amount               decimal.Decimal  `json:"amount"`
	ForeignCurrencyID    *int64           `json:"foreignCurrencyId"`
	ForeignAmount        *decimal.Decimal `json:"foreignAmount"`
	Identifier           int              `json:"identifier"`
}

// NewJournalLegs builds the source (negative) and destination (positive) legs
// for amount. The foreign amount, when present, is mirrored the same way.
func NewJournalLegs(sourceID, destinationID, currencyID int64, amount decimal.Decimal, foreignCurrencyID *int64, foreignAmount *decimal.Decimal) []Transaction {
	source := Transaction{
		AccountID:  sourceID,
		CurrencyID: currencyID,
		Amount:     Negative(amount),
	}
	destination := Transaction{
		AccountID:  destinationID,
		CurrencyID: currencyID,
		Amount:     Positive(amount),
	}
	if foreignCurrencyID != nil && foreignAmount != nil {
		fs, fd := Negative(*foreignAmount), Positive(*foreignAmount)
		source.ForeignCurrencyID, source.ForeignAmount = foreignCurrencyID, &fs
		destination.ForeignCurrencyID, destination.ForeignAmount = foreignCurrencyID, &fd
	}
	return []Transaction{source, destination}
}

// CheckBalanced verifies a journal has exactly two legs that sum to zero, and
// that foreign amounts, when present on either leg, are present on both and
// also sum to zero.
func (j TransactionJournal) CheckBalanced() error {
	if len(j.Transactions) != 2 {
		return fmt.Errorf("%w: journal has %d legs", common.ErrUnbalancedJournal, len(j.Transactions))
	}
	a, b := j.Transactions[0], j.Transactions[1]
	if a.CurrencyID != b.CurrencyID {
		return fmt.Errorf("%w: legs use different currencies", common.ErrUnbalancedJournal)
	}
	if !a.Amount.Add(b.Amount).IsZero() {
		return fmt.Errorf("%w: %s + %s", common.ErrUnbalancedJournal, a.Amount, b.Amount)
	}

	if a.ForeignAmount == nil && b.ForeignAmount == nil {
		return nil
	}
	if a.ForeignAmount == nil || b.ForeignAmount == nil ||
		a.ForeignCurrencyID == nil || b.ForeignCurrencyID == nil ||
		*a.ForeignCurrencyID != *b.ForeignCurrencyID {
		return fmt.Errorf("%w: foreign amount on one leg only", common.ErrUnbalancedJournal)
	}
	if !a.ForeignAmount.Add(*b.ForeignAmount).IsZero() {
		return fmt.Errorf("%w: foreign %s + %s", common.ErrUnbalancedJournal, a.ForeignAmount, b.ForeignAmount)
	}
	return nil
}

// StoreTransactionGroupIn is the builder input. Every journal must use the
// same transaction type.
type StoreTransactionGroupIn struct {
	GroupTitle   string
	Transactions []StoreJournalIn
}

type StoreJournalIn struct {
	Type                TransactionType
	Date                time.Time
	Amount              decimal.Decimal
	Description         string
	CurrencyID          *int64
	CurrencyCode        string
	ForeignCurrencyID   *int64
	ForeignCurrencyCode string
	ForeignAmount       *decimal.Decimal
	SourceID            *int64
	SourceName          string
	DestinationID       *int64
	DestinationName     string
	BudgetID            *int64
	CategoryID          *int64
	CategoryName        string
	PiggyBankID         *int64
	Tags                []string
	Notes               string
	Meta                map[string]string
}

type StoreTransactionGroupRequest struct {
	GroupTitle   string                    `json:"groupTitle"`
	Transactions []StoreTransactionRequest `json:"transactions" validate:"required,min=1,dive"`
}

type StoreTransactionRequest struct {
	Type                string   `json:"type" validate:"required,oneof=withdrawal deposit transfer"`
	Date                string   `json:"date" validate:"required,date"`
	Amount              string   `json:"amount" validate:"required,decimal"`
	Description         string   `json:"description" validate:"required,max=1024"`
	CurrencyID          *int64   `json:"currencyId"`
	CurrencyCode        string   `json:"currencyCode" validate:"omitempty,len=3"`
	ForeignCurrencyID   *int64   `json:"foreignCurrencyId"`
	ForeignCurrencyCode string   `json:"foreignCurrencyCode" validate:"omitempty,len=3"`
	ForeignAmount       string   `json:"foreignAmount" validate:"omitempty,decimal"`
	SourceID            *int64   `json:"sourceId"`
	SourceName          string   `json:"sourceName"`
	DestinationID       *int64   `json:"destinationId"`
	DestinationName     string   `json:"destinationName"`
	BudgetID            *int64   `json:"budgetId"`
	CategoryID          *int64   `json:"categoryId"`
	CategoryName        string   `json:"categoryName"`
	PiggyBankID         *int64   `json:"piggyBankId"`
	Tags                []string `json:"tags"`
	Notes               string   `json:"notes"`
}

func (req StoreTransactionGroupRequest) ToStoreIn() (StoreTransactionGroupIn, error) {
	in := StoreTransactionGroupIn{GroupTitle: req.GroupTitle}
	for _, t := range req.Transactions {
		txType, err := ParseTransactionType(t.Type)
		if err != nil {
			return in, err
		}
		date, err := parseDate(t.Date)
		if err != nil {
			return in, err
		}
		amount, err := ParseAmount(t.Amount)
		if err != nil {
			return in, err
		}
		foreignAmount, err := ParseOptionalAmount(t.ForeignAmount)
		if err != nil {
			return in, err
		}
		in.Transactions = append(in.Transactions, StoreJournalIn{
			Type:                txType,
			Date:                date,
			Amount:              amount,
			Description:         t.Description,
			CurrencyID:          t.CurrencyID,
			CurrencyCode:        t.CurrencyCode,
			ForeignCurrencyID:   t.ForeignCurrencyID,
			ForeignCurrencyCode: t.ForeignCurrencyCode,
			ForeignAmount:       foreignAmount,
			SourceID:            t.SourceID,
			SourceName:          t.SourceName,
			DestinationID:       t.DestinationID,
			DestinationName:     t.DestinationName,
			BudgetID:            t.BudgetID,
			CategoryID:          t.CategoryID,
			CategoryName:        t.CategoryName,
			PiggyBankID:         t.PiggyBankID,
			Tags:                t.Tags,
			Notes:               t.Notes,
		})
	}
	return in, nil
}
