package repository

import (
	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para StockMovement (DIP).
// Los movimientos son inmutables: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByUser lista movimientos por fecha descendente; productID vacío = todos.
	ListByUser(userID, productID string) ([]*entity.StockMovement, error)
	// CountByType cuenta movimientos del usuario por tipo (entry/exit).
	CountByType(userID, movementType string) (int, error)
}
