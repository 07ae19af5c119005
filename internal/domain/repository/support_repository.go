package repository

import (
	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
)

// SupportMessageRepository define el puerto de persistencia para SupportMessage (DIP).
type SupportMessageRepository interface {
	Create(message *entity.SupportMessage) error
}
