package repositories

var (
	queryTransactionTypeGetID = `
	SELECT "id" FROM transaction_types WHERE "type" = $1;`

	queryTransactionGroupCreate = `
	INSERT INTO transaction_groups ("user_id", "title", "created_at", "updated_at")
	VALUES ($1, $2, now(), now())
	RETURNING "id", "created_at";`

	queryTransactionJournalCreate = `
	INSERT INTO transaction_journals (
		"user_id", "transaction_group_id", "transaction_type_id", "transaction_currency_id",
		"description", "date", "order", "created_at", "updated_at"
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING "id";`

	queryTransactionCreate = `
	INSERT INTO transactions (
		"transaction_journal_id", "account_id", "transaction_currency_id", "amount",
		"foreign_currency_id", "foreign_amount", "identifier", "created_at"
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	RETURNING "id";`

	queryJournalMetaCreate = `
	INSERT INTO journal_meta ("transaction_journal_id", "name", "data") VALUES ($1, $2, $3);`

	queryJournalAttachBudget = `
	INSERT INTO budget_transaction_journal ("budget_id", "transaction_journal_id") VALUES ($1, $2)
	ON CONFLICT DO NOTHING;`

	queryJournalAttachCategory = `
	INSERT INTO category_transaction_journal ("category_id", "transaction_journal_id") VALUES ($1, $2)
	ON CONFLICT DO NOTHING;`

	queryTagUpsert = `
	INSERT INTO tags ("user_id", "tag") VALUES ($1, $2)
	ON CONFLICT ("user_id", "tag") DO UPDATE SET "tag" = EXCLUDED."tag"
	RETURNING "id";`

	queryJournalAttachTag = `
	INSERT INTO tag_transaction_journal ("tag_id", "transaction_journal_id") VALUES ($1, $2)
	ON CONFLICT DO NOTHING;`

	queryTransactionGroupGet = `
	SELECT "id", "user_id", "title", "created_at"
	FROM transaction_groups
	WHERE "user_id" = $1 AND "id" = $2 AND "deleted_at" IS NULL;`

	queryTransactionJournalsByGroup = `
	SELECT
		j."id", j."user_id", j."transaction_group_id", j."transaction_type_id", tt."type",
		j."transaction_currency_id", j."description", j."date", j."order",
		(SELECT b."budget_id" FROM budget_transaction_journal b WHERE b."transaction_journal_id" = j."id" LIMIT 1),
		(SELECT c."category_id" FROM category_transaction_journal c WHERE c."transaction_journal_id" = j."id" LIMIT 1),
		COALESCE((SELECT array_agg(t."tag" ORDER BY t."tag") FROM tag_transaction_journal tj
			JOIN tags t ON t."id" = tj."tag_id" WHERE tj."transaction_journal_id" = j."id"), '{}'),
		(SELECT n."text" FROM notes n WHERE n."noteable_type" = 'TransactionJournal' AND n."noteable_id" = j."id")
	FROM transaction_journals j
	JOIN transaction_types tt ON tt."id" = j."transaction_type_id"
	WHERE j."transaction_group_id" = $1 AND j."deleted_at" IS NULL
	ORDER BY j."order", j."id";`

	queryTransactionsByJournals = `
	SELECT "id", "transaction_journal_id", "account_id", "transaction_currency_id", "amount",
		"foreign_currency_id", "foreign_amount", "identifier"
	FROM transactions
	WHERE "transaction_journal_id" = ANY($1) AND "deleted_at" IS NULL
	ORDER BY "transaction_journal_id", "amount", "id";`

	queryJournalMetaByJournals = `
	SELECT "transaction_journal_id", "name", "data"
	FROM journal_meta
	WHERE "transaction_journal_id" = ANY($1) AND "deleted_at" IS NULL;`

	queryTransactionsSoftDeleteByGroup = `
	UPDATE transactions SET "deleted_at" = now()
	WHERE "deleted_at" IS NULL AND "transaction_journal_id" IN (
		SELECT "id" FROM transaction_journals WHERE "transaction_group_id" = $1
	);`

	queryJournalMetaSoftDeleteByGroup = `
	UPDATE journal_meta SET "deleted_at" = now()
	WHERE "deleted_at" IS NULL AND "transaction_journal_id" IN (
		SELECT "id" FROM transaction_journals WHERE "transaction_group_id" = $1
	);`

	queryJournalsSoftDeleteByGroup = `
	UPDATE transaction_journals SET "deleted_at" = now(), "updated_at" = now()
	WHERE "transaction_group_id" = $1 AND "deleted_at" IS NULL;`

	queryTransactionGroupSoftDelete = `
	UPDATE transaction_groups SET "deleted_at" = now(), "updated_at" = now()
	WHERE "user_id" = $1 AND "id" = $2 AND "deleted_at" IS NULL;`

	queryOpeningBalanceGroupByAccount = `
	SELECT j."transaction_group_id"
	FROM transactions t
	JOIN transaction_journals j ON j."id" = t."transaction_journal_id"
	JOIN transaction_types tt ON tt."id" = j."transaction_type_id"
	WHERE t."account_id" = $1 AND tt."type" = 'Opening balance'
		AND t."deleted_at" IS NULL AND j."deleted_at" IS NULL
	ORDER BY j."id" LIMIT 1;`

	queryCountRecurrenceGroups = `
	SELECT COUNT(DISTINCT j."transaction_group_id")
	FROM journal_meta m
	JOIN transaction_journals j ON j."id" = m."transaction_journal_id"
	WHERE m."name" = 'recurrence_id' AND m."data" = $1
		AND m."deleted_at" IS NULL AND j."deleted_at" IS NULL;`

	queryRecurrenceDateExists = `
	SELECT EXISTS (
		SELECT 1
		FROM journal_meta rid
		JOIN journal_meta rdate ON rdate."transaction_journal_id" = rid."transaction_journal_id"
		JOIN transaction_journals j ON j."id" = rid."transaction_journal_id"
		WHERE rid."name" = 'recurrence_id' AND rid."data" = $1
			AND rdate."name" = 'recurrence_date' AND rdate."data" = $2
			AND rid."deleted_at" IS NULL AND rdate."deleted_at" IS NULL AND j."deleted_at" IS NULL
	);`
)
