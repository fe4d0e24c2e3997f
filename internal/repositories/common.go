package repositories

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/common/accounttype"
	"github.com/budhip/go-fp-ledger/internal/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func WithUnion(firstQuery sq.SelectBuilder, secondQuery sq.SelectBuilder) sq.SelectBuilder {
	return firstQuery.SuffixExpr(secondQuery.Prefix("UNION"))
}

func accountTypeNames(types []accounttype.AccountType) []string {
	return accounttype.Strings(types)
}

func transactionTypeNames(types []models.TransactionType) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	return names
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func decimalArg(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return *d
}

func int64Arg(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func timeArg(v *time.Time) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
