package dto

import "github.com/shopspring/decimal"

// LowStockProduct producto bajo el umbral de alerta, para el resumen.
type LowStockProduct struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Barcode      string `json:"barcode"`
	CurrentStock int    `json:"current_stock"`
}

// SummaryResponse resumen agregado del inventario del usuario. Se recalcula
// en cada petición sobre el estado persistido (sin caché).
type SummaryResponse struct {
	ProductsCount         int               `json:"products_count"`
	TotalStockValue       decimal.Decimal   `json:"total_stock_value"`       // Σ stock * precio de venta
	TotalPotentialRevenue decimal.Decimal   `json:"total_potential_revenue"` // Σ stock * precio de venta
	TotalStockCost        decimal.Decimal   `json:"total_stock_cost"`        // Σ stock * precio de compra
	TotalEntries          int               `json:"total_entries"`
	TotalExits            int               `json:"total_exits"`
	LowStockThreshold     int               `json:"low_stock_threshold"`
	LowStockCount         int               `json:"low_stock_count"`
	LowStockProducts      []LowStockProduct `json:"low_stock_products"`
}
