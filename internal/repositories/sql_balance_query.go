package repositories

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

var (
	// native legs in the currency plus foreign amounts in the currency on legs
	// kept in another currency
	queryBalanceSums = `
	SELECT
		COALESCE(SUM(t."amount") FILTER (WHERE t."transaction_currency_id" = $3), 0),
		COALESCE(SUM(t."foreign_amount") FILTER (WHERE t."foreign_currency_id" = $3 AND t."transaction_currency_id" <> $3), 0)
	FROM transactions t
	JOIN transaction_journals j ON j."id" = t."transaction_journal_id"
	WHERE t."account_id" = $1 AND j."date" <= $2
		AND t."deleted_at" IS NULL AND j."deleted_at" IS NULL;`

	queryBalancePerCurrency = `
	SELECT t."transaction_currency_id", COALESCE(SUM(t."amount"), 0)
	FROM transactions t
	JOIN transaction_journals j ON j."id" = t."transaction_journal_id"
	WHERE t."account_id" = $1 AND j."date" <= $2
		AND t."deleted_at" IS NULL AND j."deleted_at" IS NULL
	GROUP BY t."transaction_currency_id"
	ORDER BY t."transaction_currency_id";`
)

func legsOfAccounts() sq.SelectBuilder {
	return psql.Select().
		From("transactions t").
		Join(`transaction_journals j ON j."id" = t."transaction_journal_id"`).
		Where(`t."deleted_at" IS NULL`).
		Where(`j."deleted_at" IS NULL`)
}

// buildBalanceRangeQuery groups an account's legs dated within [start, end]
// per day, currency and foreign currency.
func buildBalanceRangeQuery(accountID int64, start, end time.Time) (string, []interface{}, error) {
	return legsOfAccounts().
		Columns(
			`j."date"::DATE AS "day"`,
			`t."transaction_currency_id"`,
			`t."foreign_currency_id"`,
			`COALESCE(SUM(t."amount"), 0)`,
			`COALESCE(SUM(t."foreign_amount"), 0)`,
		).
		Where(sq.Eq{`t."account_id"`: accountID}).
		Where(sq.GtOrEq{`j."date"`: start}).
		Where(sq.LtOrEq{`j."date"`: end}).
		GroupBy(`"day"`, `t."transaction_currency_id"`, `t."foreign_currency_id"`).
		OrderBy(`"day"`, `t."transaction_currency_id"`).
		ToSql()
}

func buildLastActivityQuery(accountIDs []int64) (string, []interface{}, error) {
	return legsOfAccounts().
		Columns(`t."account_id"`, `MAX(j."date")`).
		Where(sq.Expr(`t."account_id" = ANY(?)`, pq.Array(accountIDs))).
		GroupBy(`t."account_id"`).
		OrderBy(`t."account_id"`).
		ToSql()
}
