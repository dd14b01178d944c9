package domain

import (
	"strings"

	"vetcare-web/internal/pkg/password"
	"vetcare-web/internal/pkg/validator"
)

// Credentials is the login form
type Credentials struct {
	Email string   `json:"email"`
	Senha string   `json:"senha"`
	Tipo  UserType `json:"tipo"`
}

// Validate runs the checks done before the login request is sent
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" || c.Senha == "" {
		return NewValidationError(MsgCredentialsMissing)
	}
	if !validator.Email(strings.TrimSpace(c.Email)) {
		return NewValidationError(MsgInvalidEmail)
	}
	if !c.Tipo.Valid() {
		return NewValidationError(MsgInvalidUserType)
	}
	return nil
}

// Address groups the optional address fields of both registration forms
type Address struct {
	Endereco string `json:"endereco,omitempty"`
	Cidade   string `json:"cidade,omitempty"`
	Estado   string `json:"estado,omitempty"`
	CEP      string `json:"cep,omitempty"`
}

// TutorRegistration is the tutor sign-up form.
// ConfirmarSenha only exists for the form check and is never serialized.
type TutorRegistration struct {
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Senha          string `json:"senha"`
	ConfirmarSenha string `json:"-"`
	Telefone       string `json:"telefone"`
	Address
}

// ClinicaRegistration is the clinic sign-up form.
// ConfirmarSenha only exists for the form check and is never serialized.
type ClinicaRegistration struct {
	NomeClinica        string `json:"nome_clinica"`
	Email              string `json:"email"`
	Senha              string `json:"senha"`
	ConfirmarSenha     string `json:"-"`
	Telefone           string `json:"telefone"`
	CNPJ               string `json:"cnpj,omitempty"`
	ResponsavelTecnico string `json:"responsavel_tecnico"`
	CRMV               string `json:"crmv,omitempty"`
	Address
}

func validateAccount(email, senha, confirmacao, telefone string) error {
	if !password.Matches(senha, confirmacao) {
		return NewValidationError(MsgPasswordMismatch)
	}
	if !password.ValidatePassword(senha) {
		return NewValidationError(MsgPasswordTooShort)
	}
	if !validator.Email(email) {
		return NewValidationError(MsgInvalidEmail)
	}
	if !validator.Phone(telefone) {
		return NewValidationError(MsgInvalidPhone)
	}
	return nil
}

// Validate runs the sign-up form checks in the order the form shows them
func (r TutorRegistration) Validate() error {
	if err := validateAccount(r.Email, r.Senha, r.ConfirmarSenha, r.Telefone); err != nil {
		return err
	}
	if strings.TrimSpace(r.Nome) == "" {
		return NewValidationError(MsgNameRequired)
	}
	return nil
}

// Validate runs the sign-up form checks in the order the form shows them
func (r ClinicaRegistration) Validate() error {
	if err := validateAccount(r.Email, r.Senha, r.ConfirmarSenha, r.Telefone); err != nil {
		return err
	}
	if strings.TrimSpace(r.NomeClinica) == "" {
		return NewValidationError(MsgClinicNameRequired)
	}
	if strings.TrimSpace(r.ResponsavelTecnico) == "" {
		return NewValidationError(MsgTechnicalRequired)
	}
	return nil
}

// AuthResult is returned by login and both registration endpoints
type AuthResult struct {
	Token string
	User  Profile
}

// VerifyResult is returned by the token verification endpoint
type VerifyResult struct {
	Valid bool
	User  Profile
}
