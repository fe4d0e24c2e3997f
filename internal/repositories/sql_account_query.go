package repositories

import (
	"github.com/lib/pq"

	"github.com/budhip/go-fp-ledger/internal/common/accounttype"
)

var (
	queryAccountTypeGetByID = `
	SELECT "id", "type" FROM account_types WHERE "id" = $1;`

	// first existing type among the candidates, by id
	queryAccountTypeGetFirstByNames = `
	SELECT "id", "type" FROM account_types WHERE "type" = ANY($1) ORDER BY "id" LIMIT 1;`

	accountColumns = `
		a."id", a."user_id", a."account_type_id", t."type", a."name", a."virtual_balance",
		a."iban", a."active", a."order", cm."data"::BIGINT, a."created_at", a."updated_at"`

	accountJoins = `
	FROM accounts a
	JOIN account_types t ON t."id" = a."account_type_id"
	LEFT JOIN account_meta cm ON cm."account_id" = a."id" AND cm."name" = 'currency_id'`

	queryAccountGetByID = `
	SELECT` + accountColumns + accountJoins + `
	WHERE a."user_id" = $1 AND a."id" = $2 AND a."deleted_at" IS NULL;`

	queryAccountFindByName = `
	SELECT` + accountColumns + accountJoins + `
	WHERE a."user_id" = $1 AND a."name" = $2 AND t."type" = ANY($3) AND a."deleted_at" IS NULL
	ORDER BY a."id" LIMIT 1;`

	queryAccountListByTypes = `
	SELECT` + accountColumns + accountJoins + `
	WHERE a."user_id" = $1 AND t."type" = ANY($2) AND a."deleted_at" IS NULL
	ORDER BY a."order", a."name";`

	queryAccountCreate = `
	INSERT INTO accounts ("user_id", "account_type_id", "name", "virtual_balance", "iban", "active", "order", "created_at", "updated_at")
	VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING "id", "created_at", "updated_at";`

	queryAccountMaxOrder = `
	SELECT COALESCE(MAX(a."order"), 0)
	FROM accounts a
	JOIN account_types t ON t."id" = a."account_type_id"
	WHERE a."user_id" = $1 AND t."type" = ANY($2) AND a."order" < $3 AND a."deleted_at" IS NULL;`

	queryAccountUpdateOrder = `
	UPDATE accounts SET "order" = $2, "updated_at" = now() WHERE "id" = $1;`

	queryAccountMetaUpsert = `
	INSERT INTO account_meta ("account_id", "name", "data") VALUES ($1, $2, $3)
	ON CONFLICT ("account_id", "name") DO UPDATE SET "data" = EXCLUDED."data";`

	queryAccountMetaDelete = `
	DELETE FROM account_meta WHERE "account_id" = $1 AND "name" = $2;`

	queryAccountMetaGet = `
	SELECT "data" FROM account_meta WHERE "account_id" = $1 AND "name" = $2;`
)

func accountTypesArg(types []accounttype.AccountType) interface{} {
	return pq.Array(accountTypeNames(types))
}
