// Package pricing implementa los cálculos de precio del negocio (servicio de
// dominio, funciones puras sobre decimal). El redondeo a 2 decimales se hace
// solo en el resultado final; los cálculos intermedios conservan precisión.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/controle-venda-api/internal/domain"
)

var cien = decimal.NewFromInt(100)

// Profit devuelve la ganancia absoluta: venta - compra.
func Profit(sale, purchase decimal.Decimal) decimal.Decimal {
	return sale.Sub(purchase).Round(2)
}

// Margin devuelve la ganancia como porcentaje del precio de venta:
// (venta - compra) / venta * 100. Con venta = 0 devuelve 0.
func Margin(sale, purchase decimal.Decimal) decimal.Decimal {
	if sale.IsZero() {
		return decimal.Zero
	}
	return sale.Sub(purchase).Div(sale).Mul(cien).Round(2)
}

// Markup devuelve la ganancia como porcentaje del precio de compra:
// (venta - compra) / compra * 100. Con compra = 0 devuelve 0.
func Markup(sale, purchase decimal.Decimal) decimal.Decimal {
	if purchase.IsZero() {
		return decimal.Zero
	}
	return sale.Sub(purchase).Div(purchase).Mul(cien).Round(2)
}

// PriceFromMargin calcula el precio de venta para lograr el margen deseado:
// compra / (1 - margen/100). Margen >= 100 es indefinido y retorna error.
func PriceFromMargin(purchase, marginPct decimal.Decimal) (decimal.Decimal, error) {
	if marginPct.GreaterThanOrEqual(cien) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	divisor := decimal.NewFromInt(1).Sub(marginPct.Div(cien))
	return purchase.Div(divisor).Round(2), nil
}

// PriceFromMarkup calcula el precio de venta a partir del markup deseado:
// compra * (1 + markup/100).
func PriceFromMarkup(purchase, markupPct decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(markupPct.Div(cien))
	return purchase.Mul(factor).Round(2)
}
