package dto

import "github.com/shopspring/decimal"

// ConvertRequest body para POST /api/currency/convert.
type ConvertRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
}

// ConvertResponse resultado de la conversión: converted_amount = amount * rate.
type ConvertResponse struct {
	Amount          decimal.Decimal `json:"amount"`
	FromCurrency    string          `json:"from_currency"`
	ToCurrency      string          `json:"to_currency"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	Rate            decimal.Decimal `json:"rate"`
}

// RatesResponse passthrough del proveedor para GET /api/currency/rates/{base}.
type RatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}
