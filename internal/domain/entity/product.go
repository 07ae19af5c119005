package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de un usuario.
// CurrentStock es un campo derivado: siempre igual a la suma neta de los
// movimientos del producto desde su creación, y nunca negativo. Solo el
// motor de movimientos lo modifica.
type Product struct {
	ID            string
	UserID        string
	Name          string
	Barcode       string // único por usuario; clave de búsqueda del flujo de escaneo
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Currency      string // uno de SupportedCurrencies
	CurrentStock  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
