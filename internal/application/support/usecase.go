package support

import (
	"time"

	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/domain"
	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
	"github.com/tu-usuario/controle-venda-api/internal/domain/repository"
)

// ContactUseCase registra mensajes del formulario de soporte.
type ContactUseCase struct {
	messageRepo repository.SupportMessageRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(messageRepo repository.SupportMessageRepository) *ContactUseCase {
	return &ContactUseCase{messageRepo: messageRepo}
}

// Send persiste el mensaje con estado pending.
func (uc *ContactUseCase) Send(userID string, in dto.SupportContactRequest) (*dto.SupportContactResponse, error) {
	if in.Subject == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	msg := &entity.SupportMessage{
		ID:        entity.NewID("msg"),
		UserID:    userID,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    entity.SupportStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.messageRepo.Create(msg); err != nil {
		return nil, err
	}
	return &dto.SupportContactResponse{
		MessageID: msg.ID,
		Message:   "mensaje enviado",
	}, nil
}
