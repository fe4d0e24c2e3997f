package repositories

var (
	currencyColumns = `"id", "code", "name", "symbol", "decimal_places", "enabled"`

	queryCurrencyGetByID = `
	SELECT ` + currencyColumns + ` FROM transaction_currencies WHERE "id" = $1;`

	queryCurrencyGetByCode = `
	SELECT ` + currencyColumns + ` FROM transaction_currencies WHERE "code" = $1;`

	queryPreferenceGet = `
	SELECT "data" FROM preferences WHERE "user_id" = $1 AND "name" = $2;`
)
