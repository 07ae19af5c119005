package dto

import "time"

// CreateMovementRequest body para POST /api/movements.
type CreateMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // entry | exit
	Quantity  int    `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	MovementID string    `json:"movement_id"`
	ProductID  string    `json:"product_id"`
	Type       string    `json:"type"`
	Quantity   int       `json:"quantity"`
	Note       string    `json:"note,omitempty"`
	Date       time.Time `json:"date"`
}
