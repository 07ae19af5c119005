package repository

import (
	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las consultas son por dueño: un usuario nunca ve productos ajenos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByUserAndID(userID, id string) (*entity.Product, error)
	GetByUserAndBarcode(userID, barcode string) (*entity.Product, error)
	GetForUpdate(userID, id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int) error
	ListByUser(userID string) ([]*entity.Product, error)
	Delete(userID, id string) error
}
