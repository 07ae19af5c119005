package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Currency      string          `json:"currency"`
}

// UpdateProductRequest entrada para actualizar un producto (campos parciales).
// CurrentStock no se expone: solo los movimientos modifican el stock.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Barcode       *string          `json:"barcode"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	Currency      *string          `json:"currency"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	Barcode       string          `json:"barcode"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Currency      string          `json:"currency"`
	CurrentStock  int             `json:"current_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BarcodeLookupResponse resultado etiquetado de la búsqueda por código de
// barras: la ausencia no es un error, el caller decide si ofrece crear.
type BarcodeLookupResponse struct {
	Found   bool             `json:"found"`
	Product *ProductResponse `json:"product,omitempty"`
}
