package domain

import (
	"strings"

	"vetcare-web/internal/pkg/validator"
)

// ContactMessage is the public contact form
type ContactMessage struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
	Assunto  string `json:"assunto,omitempty"`
	Mensagem string `json:"mensagem"`
}

// Validate checks the required fields and the email format
func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Nome) == "" {
		return NewValidationError("Campo nome é obrigatório")
	}
	if strings.TrimSpace(m.Mensagem) == "" {
		return NewValidationError("Campo mensagem é obrigatório")
	}
	if !validator.Email(strings.TrimSpace(m.Email)) {
		return NewValidationError(MsgInvalidEmail)
	}
	return nil
}
