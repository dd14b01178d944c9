package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced to the presentation layer
type ErrorKind int

const (
	// KindValidation is a client-side check that failed before any network call
	KindValidation ErrorKind = iota + 1
	// KindAuthRejected is a non-2xx answer from the backend
	KindAuthRejected
	// KindNetwork means no usable response was received
	KindNetwork
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthRejected:
		return "auth_rejected"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error carries a human-readable message and its kind
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError builds a KindValidation error
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewRejectedError builds a KindAuthRejected error for an HTTP status
func NewRejectedError(status int, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("Erro %d", status)
	}
	return &Error{Kind: KindAuthRejected, Status: status, Message: message}
}

// NewNetworkError builds a KindNetwork error wrapping the transport failure
func NewNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
}

// KindOf returns the kind of err, or 0 when err is not a *Error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Validation messages shown next to the forms
const (
	MsgPasswordMismatch   = "As senhas não coincidem"
	MsgPasswordTooShort   = "A senha deve ter pelo menos 6 caracteres"
	MsgInvalidEmail       = "Email inválido"
	MsgInvalidPhone       = "Telefone inválido"
	MsgNameRequired       = "Nome é obrigatório"
	MsgClinicNameRequired = "Nome da clínica é obrigatório"
	MsgTechnicalRequired  = "Responsável técnico é obrigatório"
	MsgCredentialsMissing = "Email e senha são obrigatórios"
	MsgInvalidUserType    = "Tipo de usuário inválido"
	MsgInvalidResponse    = "Resposta inválida do servidor"
)
