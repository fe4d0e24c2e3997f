package repositories

var (
	queryBudgetGet = `
	SELECT "id", "user_id", "name", "active" FROM budgets WHERE "user_id" = $1 AND "id" = $2;`

	queryCategoryGet = `
	SELECT "id", "user_id", "name" FROM categories WHERE "user_id" = $1 AND "id" = $2 AND "deleted_at" IS NULL;`

	queryCategoryFindByName = `
	SELECT "id", "user_id", "name" FROM categories
	WHERE "user_id" = $1 AND "name" = $2 AND "deleted_at" IS NULL
	ORDER BY "id" LIMIT 1;`

	queryCategoryCreate = `
	INSERT INTO categories ("user_id", "name") VALUES ($1, $2) RETURNING "id";`

	queryPiggyBankGet = `
	SELECT p."id", p."account_id", p."name"
	FROM piggy_banks p
	JOIN accounts a ON a."id" = p."account_id"
	WHERE a."user_id" = $1 AND p."id" = $2;`

	queryNoteUpsert = `
	INSERT INTO notes ("noteable_id", "noteable_type", "text", "created_at", "updated_at")
	VALUES ($1, $2, $3, now(), now())
	ON CONFLICT ("noteable_type", "noteable_id") DO UPDATE SET "text" = EXCLUDED."text", "updated_at" = now();`

	queryNoteDelete = `
	DELETE FROM notes WHERE "noteable_id" = $1 AND "noteable_type" = $2;`
)
