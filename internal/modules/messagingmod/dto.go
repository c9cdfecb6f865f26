package messagingmod

type WhatsAppLinkRequest struct {
	Phone      string `json:"phone" validate:"required"`
	Message    string `json:"message"`
	TemplateID string `json:"templateId"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	Value      string `json:"value"`
	EntityID   string `json:"entityId"`
	EntityType string `json:"entityType" validate:"omitempty,oneof=Lead Customer"`
}

type MailtoRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject"`
	CC      string `json:"cc" validate:"omitempty,email"`
	Body    string `json:"body"`
}
