package repository

import (
	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
)

// SessionRepository define el puerto de persistencia para Session (DIP).
type SessionRepository interface {
	Create(session *entity.Session) error
	GetByToken(token string) (*entity.Session, error)
	DeleteByToken(token string) error
}
