package models

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common/accounttype"
)

const (
	// DefaultAccountOrder is the order index given to a new account before it is
	// moved to the end of its type.
	DefaultAccountOrder = 25000

	AccountMetaCurrencyID      = "currency_id"
	AccountMetaAccountRole     = "account_role"
	AccountMetaAccountNumber   = "account_number"
	AccountMetaBIC             = "BIC"
	AccountMetaIncludeNetWorth = "include_net_worth"
	AccountMetaInterest        = "interest"
	AccountMetaInterestPeriod  = "interest_period"
)

type Account struct {
	ID             int64                   `json:"id"`
	UserID         int64                   `json:"userId"`
	AccountTypeID  int64                   `json:"accountTypeId"`
	AccountType    accounttype.AccountType `json:"accountType"`
	Name           string                  `json:"name"`
	VirtualBalance *decimal.Decimal        `json:"virtualBalance"`
	IBAN           *string                 `json:"iban"`
	Active         bool                    `json:"active"`
	Order          int                     `json:"order"`
	CurrencyID     *int64                  `json:"currencyId"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// VirtualBalanceOrZero returns the account offset, zero when unset.
func (a Account) VirtualBalanceOrZero() decimal.Decimal {
	if a.VirtualBalance == nil {
		return decimal.Zero
	}
	return *a.VirtualBalance
}

type AccountTypeRow struct {
	ID   int64
	Type accounttype.AccountType
}

type AccountMeta struct {
	ID        int64
	AccountID int64
	Name      string
	Data      string
}

// CreateAccountIn holds everything an account can be created with. Only Name and
// one of AccountTypeID / AccountTypeName are required.
type CreateAccountIn struct {
	Name               string
	AccountTypeID      *int64
	AccountTypeName    string
	IBAN               string
	BIC                string
	AccountNumber      string
	AccountRole        string
	VirtualBalance     string
	CurrencyID         *int64
	CurrencyCode       string
	OpeningBalance     string
	OpeningBalanceDate *time.Time
	LiabilityAmount    string
	LiabilityStartDate *time.Time
	Interest           string
	InterestPeriod     string
	IncludeNetWorth    *bool
	Order              *int
	Active             bool
	Notes              string
}

// ApplyLiability turns liability_amount and liability_start_date into the
// equivalent opening balance. The amount is owed, so its sign is flipped.
func (in *CreateAccountIn) ApplyLiability() {
	if strings.TrimSpace(in.LiabilityAmount) == "" {
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(in.LiabilityAmount))
	if err != nil {
		return
	}
	in.OpeningBalance = amount.Mul(minusOne).String()
	if in.LiabilityStartDate != nil {
		in.OpeningBalanceDate = in.LiabilityStartDate
	}
}

// HasValidOpeningBalance reports whether both an amount and a date are set.
// A zero amount still counts.
func (in CreateAccountIn) HasValidOpeningBalance() bool {
	amount := strings.TrimSpace(in.OpeningBalance)
	if amount == "" || in.OpeningBalanceDate == nil || in.OpeningBalanceDate.IsZero() {
		return false
	}
	_, err := decimal.NewFromString(amount)
	return err == nil
}

// FilterIBAN removes all whitespace and upper cases the result. Empty yields nil.
func FilterIBAN(iban string) *string {
	filtered := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, iban)
	if filtered == "" {
		return nil
	}
	return &filtered
}

type CreateAccountRequest struct {
	Name               string `json:"name" validate:"required,max=1024"`
	Type               string `json:"type" validate:"required_without=TypeID"`
	TypeID             *int64 `json:"typeId"`
	IBAN               string `json:"iban" validate:"omitempty,max=64"`
	BIC                string `json:"bic" validate:"omitempty,max=11"`
	AccountNumber      string `json:"accountNumber"`
	AccountRole        string `json:"accountRole"`
	VirtualBalance     string `json:"virtualBalance" validate:"omitempty,decimal"`
	CurrencyID         *int64 `json:"currencyId"`
	CurrencyCode       string `json:"currencyCode" validate:"omitempty,len=3"`
	OpeningBalance     string `json:"openingBalance" validate:"omitempty,decimal"`
	OpeningBalanceDate string `json:"openingBalanceDate" validate:"omitempty,date"`
	LiabilityAmount    string `json:"liabilityAmount" validate:"omitempty,decimal"`
	LiabilityStartDate string `json:"liabilityStartDate" validate:"omitempty,date"`
	Interest           string `json:"interest" validate:"omitempty,decimal"`
	InterestPeriod     string `json:"interestPeriod" validate:"omitempty,oneof=daily monthly yearly"`
	IncludeNetWorth    *bool  `json:"includeNetWorth"`
	Order              *int   `json:"order" validate:"omitempty,min=0"`
	Active             *bool  `json:"active"`
	Notes              string `json:"notes"`
}

func (req CreateAccountRequest) ToCreateAccountIn() (CreateAccountIn, error) {
	in := CreateAccountIn{
		Name:            req.Name,
		AccountTypeID:   req.TypeID,
		AccountTypeName: req.Type,
		IBAN:            req.IBAN,
		BIC:             req.BIC,
		AccountNumber:   req.AccountNumber,
		AccountRole:     req.AccountRole,
		VirtualBalance:  req.VirtualBalance,
		CurrencyID:      req.CurrencyID,
		CurrencyCode:    req.CurrencyCode,
		OpeningBalance:  req.OpeningBalance,
		LiabilityAmount: req.LiabilityAmount,
		Interest:        req.Interest,
		InterestPeriod:  req.InterestPeriod,
		IncludeNetWorth: req.IncludeNetWorth,
		Order:           req.Order,
		Active:          true,
		Notes:           req.Notes,
	}
	if req.Active != nil {
		in.Active = *req.Active
	}

	var err error
	if in.OpeningBalanceDate, err = parseOptionalDate(req.OpeningBalanceDate); err != nil {
		return in, err
	}
	if in.LiabilityStartDate, err = parseOptionalDate(req.LiabilityStartDate); err != nil {
		return in, err
	}
	return in, nil
}

type AccountResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	IBAN           *string `json:"iban"`
	VirtualBalance *string `json:"virtualBalance"`
	CurrencyID     *int64  `json:"currencyId"`
	Active         bool    `json:"active"`
	Order          int     `json:"order"`
}

func (a Account) ToResponse() AccountResponse {
	resp := AccountResponse{
		ID:         a.ID,
		Name:       a.Name,
		Type:       string(a.AccountType),
		IBAN:       a.IBAN,
		CurrencyID: a.CurrencyID,
		Active:     a.Active,
		Order:      a.Order,
	}
	if a.VirtualBalance != nil {
		v := a.VirtualBalance.String()
		resp.VirtualBalance = &v
	}
	return resp
}

type ListAccountRequest struct {
	Type string `query:"type"`
}
