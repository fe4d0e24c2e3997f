package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common"
)

var minusOne = decimal.NewFromInt(-1)

// Positive returns amount as a value >= 0.
func Positive(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return amount.Mul(minusOne)
	}
	return amount
}

// Negative returns amount as a value <= 0.
func Negative(amount decimal.Decimal) decimal.Decimal {
	if amount.IsPositive() {
		return amount.Mul(minusOne)
	}
	return amount
}

// Opposite flips the sign of amount. A nil amount stays nil.
func Opposite(amount *decimal.Decimal) *decimal.Decimal {
	if amount == nil {
		return nil
	}
	o := amount.Mul(minusOne)
	return &o
}

func SumAmounts(amounts ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	return sum
}

// ParseAmount parses a decimal string. Empty strings are rejected.
func ParseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", common.ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", common.ErrInvalidAmount, value)
	}
	return d, nil
}

// ParseOptionalAmount returns nil for an empty string.
func ParseOptionalAmount(value string) (*decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := ParseAmount(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
