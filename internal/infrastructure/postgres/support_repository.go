package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
	"github.com/tu-usuario/controle-venda-api/internal/domain/repository"
)

var _ repository.SupportMessageRepository = (*SupportMessageRepo)(nil)

// SupportMessageRepo implementación de SupportMessageRepository sobre PostgreSQL.
type SupportMessageRepo struct {
	q Querier
}

// NewSupportMessageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupportMessageRepository(q Querier) *SupportMessageRepo {
	return &SupportMessageRepo{q: q}
}

// Create persiste un mensaje de soporte.
func (r *SupportMessageRepo) Create(message *entity.SupportMessage) error {
	query := `
		INSERT INTO support_messages (id, user_id, subject, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		message.ID, message.UserID, message.Subject,
		message.Message, message.Status, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert support message: %w", err)
	}
	return nil
}
