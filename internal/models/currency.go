package models

// PreferenceCurrency is the preference name holding the owner's default currency code.
const PreferenceCurrency = "currencyPreference"

type Currency struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	DecimalPlaces int    `json:"decimalPlaces"`
	Enabled       bool   `json:"enabled"`
}
