package entity

import "time"

// Estados de un mensaje de soporte.
const (
	SupportStatusPending = "pending"
)

// SupportMessage mensaje enviado desde el formulario de contacto.
type SupportMessage struct {
	ID        string
	UserID    string
	Subject   string
	Message   string
	Status    string
	CreatedAt time.Time
}
