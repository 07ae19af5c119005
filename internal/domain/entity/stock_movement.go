package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntry = "entry" // entrada de mercancía
	MovementTypeExit  = "exit"  // salida (venta, pérdida)
)

// StockMovement representa un movimiento del libro de stock. Inmutable una
// vez creado; sobrevive al borrado del producto como historial huérfano.
type StockMovement struct {
	ID        string
	UserID    string
	ProductID string
	Type      string // entry | exit
	Quantity  int    // siempre positivo; el signo lo da Type
	Note      string
	Date      time.Time
}

// Delta devuelve el efecto del movimiento sobre el stock (+Quantity o -Quantity).
func (m *StockMovement) Delta() int {
	if m.Type == MovementTypeExit {
		return -m.Quantity
	}
	return m.Quantity
}
