package repositories

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/budhip/go-fp-ledger/internal/models"
)

// buildJournalListQuery selects journals seen from their source leg, joined
// with the destination leg and the names needed by insight listings.
func buildJournalListQuery(f models.JournalFilter) (string, []interface{}, error) {
	q := psql.Select(
		`j."id"`,
		`j."transaction_group_id"`,
		`j."date"`,
		`j."description"`,
		`c."id"`, `c."name"`, `c."symbol"`, `c."code"`, `c."decimal_places"`,
		`src."amount"`,
		`fc."id"`, `fc."name"`, `fc."symbol"`, `fc."code"`, `fc."decimal_places"`,
		`src."foreign_amount"`,
		`sa."id"`, `sa."name"`, `sa."iban"`,
		`da."id"`, `da."name"`, `da."iban"`,
		`(SELECT b."name" FROM budget_transaction_journal bj JOIN budgets b ON b."id" = bj."budget_id"
			WHERE bj."transaction_journal_id" = j."id" ORDER BY b."id" LIMIT 1)`,
		`(SELECT cat."name" FROM category_transaction_journal cj JOIN categories cat ON cat."id" = cj."category_id"
			WHERE cj."transaction_journal_id" = j."id" ORDER BY cat."id" LIMIT 1)`,
		`COALESCE((SELECT array_agg(t."tag" ORDER BY t."tag") FROM tag_transaction_journal tj
			JOIN tags t ON t."id" = tj."tag_id" WHERE tj."transaction_journal_id" = j."id"), '{}')`,
	).
		From("transaction_journals j").
		Join(`transaction_types tt ON tt."id" = j."transaction_type_id"`).
		Join(`transactions src ON src."transaction_journal_id" = j."id" AND src."amount" < 0 AND src."deleted_at" IS NULL`).
		Join(`transactions dst ON dst."transaction_journal_id" = j."id" AND dst."amount" > 0 AND dst."deleted_at" IS NULL`).
		Join(`accounts sa ON sa."id" = src."account_id"`).
		Join(`accounts da ON da."id" = dst."account_id"`).
		Join(`transaction_currencies c ON c."id" = src."transaction_currency_id"`).
		LeftJoin(`transaction_currencies fc ON fc."id" = src."foreign_currency_id"`).
		Where(sq.Eq{`j."user_id"`: f.UserID}).
		Where(`j."deleted_at" IS NULL`).
		Where(sq.GtOrEq{`j."date"`: f.Start}).
		Where(sq.LtOrEq{`j."date"`: f.End})

	if len(f.Types) > 0 {
		q = q.Where(sq.Expr(`tt."type" = ANY(?)`, pq.Array(transactionTypeNames(f.Types))))
	}
	if len(f.SourceAccounts) > 0 {
		q = q.Where(sq.Expr(`src."account_id" = ANY(?)`, pq.Array(f.SourceAccounts)))
	}
	if len(f.DestinationAccounts) > 0 {
		q = q.Where(sq.Expr(`dst."account_id" = ANY(?)`, pq.Array(f.DestinationAccounts)))
	}
	if len(f.EitherAccounts) > 0 {
		q = q.Where(sq.Or{
			sq.Expr(`src."account_id" = ANY(?)`, pq.Array(f.EitherAccounts)),
			sq.Expr(`dst."account_id" = ANY(?)`, pq.Array(f.EitherAccounts)),
		})
	}
	if f.CurrencyID != nil {
		q = q.Where(sq.Eq{`src."transaction_currency_id"`: *f.CurrencyID})
	}
	if f.ForeignCurrencyID != nil {
		q = q.Where(sq.Eq{`src."foreign_currency_id"`: *f.ForeignCurrencyID})
	}

	return q.OrderBy(`j."date" DESC`, `j."id"`).ToSql()
}
