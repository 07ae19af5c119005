package dto

// SupportContactRequest body para POST /api/support/contact.
type SupportContactRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SupportContactResponse confirmación del envío.
type SupportContactResponse struct {
	MessageID string `json:"message_id"`
	Message   string `json:"message"`
}
