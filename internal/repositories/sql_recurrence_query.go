package repositories

var (
	queryRecurrenceCreate = `
	INSERT INTO recurrences (
		"user_id", "transaction_type_id", "title", "description", "first_date", "repeat_until",
		"latest_date", "repetitions", "apply_rules", "active", "created_at", "updated_at"
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
	RETURNING "id";`

	queryRecurrenceUpdate = `
	UPDATE recurrences SET
		"title" = $3, "description" = $4, "first_date" = $5, "repeat_until" = $6,
		"repetitions" = $7, "apply_rules" = $8, "active" = $9, "updated_at" = now()
	WHERE "user_id" = $1 AND "id" = $2 AND "deleted_at" IS NULL;`

	queryRecurrenceUpdateLatestDate = `
	UPDATE recurrences SET "latest_date" = $2, "updated_at" = now() WHERE "id" = $1;`

	queryRecurrenceGet = `
	SELECT
		r."id", r."user_id", r."transaction_type_id", tt."type", r."title", r."description",
		r."first_date", r."repeat_until", r."latest_date", r."repetitions", r."apply_rules", r."active",
		(SELECT n."text" FROM notes n WHERE n."noteable_type" = 'Recurrence' AND n."noteable_id" = r."id")
	FROM recurrences r
	JOIN transaction_types tt ON tt."id" = r."transaction_type_id"
	WHERE r."user_id" = $1 AND r."id" = $2 AND r."deleted_at" IS NULL;`

	queryRecurrenceLock = `
	SELECT "id" FROM recurrences
	WHERE "user_id" = $1 AND "id" = $2 AND "deleted_at" IS NULL
	FOR UPDATE;`

	queryRecurrenceSoftDelete = `
	UPDATE recurrences SET "deleted_at" = now(), "updated_at" = now()
	WHERE "user_id" = $1 AND "id" = $2 AND "deleted_at" IS NULL;`

	queryRecurrenceListDue = `
	SELECT "id", "user_id"
	FROM recurrences
	WHERE "active" = TRUE AND "deleted_at" IS NULL
		AND "first_date" <= $1 AND ("repeat_until" IS NULL OR "repeat_until" >= $1)
	ORDER BY "id"
	LIMIT $2;`

	queryRepetitionCreate = `
	INSERT INTO recurrences_repetitions ("recurrence_id", "repetition_type", "repetition_moment", "repetition_skip", "weekend")
	VALUES ($1, $2, $3, $4, $5)
	RETURNING "id";`

	queryRepetitionsByRecurrence = `
	SELECT "id", "recurrence_id", "repetition_type", "repetition_moment", "repetition_skip", "weekend"
	FROM recurrences_repetitions WHERE "recurrence_id" = $1 ORDER BY "id";`

	queryRepetitionsDelete = `
	DELETE FROM recurrences_repetitions WHERE "recurrence_id" = $1;`

	queryRecurrenceTransactionCreate = `
	INSERT INTO recurrences_transactions (
		"recurrence_id", "transaction_currency_id", "foreign_currency_id", "source_id", "destination_id",
		"amount", "foreign_amount", "description"
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING "id";`

	queryRecurrenceTransactionsByRecurrence = `
	SELECT "id", "recurrence_id", "transaction_currency_id", "foreign_currency_id", "source_id",
		"destination_id", "amount", "foreign_amount", "description"
	FROM recurrences_transactions WHERE "recurrence_id" = $1 ORDER BY "id";`

	queryRecurrenceTransactionsDelete = `
	DELETE FROM recurrences_transactions WHERE "recurrence_id" = $1;`

	queryRecurrenceMetaUpsert = `
	INSERT INTO rt_meta ("rt_id", "name", "value") VALUES ($1, $2, $3)
	ON CONFLICT ("rt_id", "name") DO UPDATE SET "value" = EXCLUDED."value";`

	queryRecurrenceMetaDelete = `
	DELETE FROM rt_meta WHERE "rt_id" = $1 AND "name" = $2;`

	queryRecurrenceMetaDeleteByRecurrence = `
	DELETE FROM rt_meta WHERE "rt_id" IN (
		SELECT "id" FROM recurrences_transactions WHERE "recurrence_id" = $1
	);`

	queryRecurrenceMetaByRecurrence = `
	SELECT m."id", m."rt_id", m."name", m."value"
	FROM rt_meta m
	JOIN recurrences_transactions rt ON rt."id" = m."rt_id"
	WHERE rt."recurrence_id" = $1
	ORDER BY m."id";`
)
