package dto

import "github.com/shopspring/decimal"

// PricingRequest body para POST /api/pricing/calculate.
type PricingRequest struct {
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}

// PricingResponse resultados redondeados a 2 decimales.
type PricingResponse struct {
	Profit decimal.Decimal `json:"profit"`
	Margin decimal.Decimal `json:"margin"` // % sobre el precio de venta
	Markup decimal.Decimal `json:"markup"` // % sobre el precio de compra
}
