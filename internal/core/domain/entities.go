package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// UserType is the discriminant shared by every user profile
type UserType string

const (
	UserTypeTutor   UserType = "tutor"
	UserTypeClinica UserType = "clinica"
)

// Valid reports whether t is one of the known user types
func (t UserType) Valid() bool {
	return t == UserTypeTutor || t == UserTypeClinica
}

// Dashboard homes per user type
const (
	TutorHome   = "/dashboard/tutor"
	ClinicaHome = "/dashboard/clinica"
)

// Profile is the logged-in user. It is implemented only by *Tutor and *Clinica.
type Profile interface {
	Type() UserType
	DisplayName() string
	isProfile()
}

// Contact holds the identity fields shared by both profile variants
type Contact struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
	Cidade   string `json:"cidade,omitempty"`
	Estado   string `json:"estado,omitempty"`
	CEP      string `json:"cep,omitempty"`
}

// Tutor is a pet owner
type Tutor struct {
	Contact
	Nome string `json:"nome"`
}

// Clinica is a veterinary clinic
type Clinica struct {
	Contact
	NomeClinica        string `json:"nome_clinica"`
	CNPJ               string `json:"cnpj,omitempty"`
	ResponsavelTecnico string `json:"responsavel_tecnico,omitempty"`
	CRMV               string `json:"crmv,omitempty"`
}

func (*Tutor) Type() UserType        { return UserTypeTutor }
func (t *Tutor) DisplayName() string { return t.Nome }
func (*Tutor) isProfile()            {}

func (*Clinica) Type() UserType        { return UserTypeClinica }
func (c *Clinica) DisplayName() string { return c.NomeClinica }
func (*Clinica) isProfile()            {}

// ErrUnknownUserType is returned when a profile carries an unexpected discriminant
var ErrUnknownUserType = errors.New("unknown user type")

// RoleHome returns the dashboard path for the profile's role.
// A nil profile has no home and yields "".
func RoleHome(p Profile) string {
	switch p.(type) {
	case *Tutor:
		return TutorHome
	case *Clinica:
		return ClinicaHome
	default:
		return ""
	}
}

// HomeFor returns the dashboard path for a user type
func HomeFor(t UserType) string {
	switch t {
	case UserTypeTutor:
		return TutorHome
	case UserTypeClinica:
		return ClinicaHome
	default:
		return ""
	}
}

type profileEnvelope struct {
	Type UserType `json:"type"`
}

// DecodeProfile decodes a JSON user object into the matching variant
func DecodeProfile(data []byte) (Profile, error) {
	var env profileEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	switch env.Type {
	case UserTypeTutor:
		var t Tutor
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("decode tutor: %w", err)
		}
		return &t, nil
	case UserTypeClinica:
		var c Clinica
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decode clinica: %w", err)
		}
		return &c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownUserType, env.Type)
	}
}

// EncodeProfile encodes a profile with its "type" discriminant
func EncodeProfile(p Profile) ([]byte, error) {
	switch v := p.(type) {
	case *Tutor:
		return json.Marshal(struct {
			Type UserType `json:"type"`
			*Tutor
		}{UserTypeTutor, v})
	case *Clinica:
		return json.Marshal(struct {
			Type UserType `json:"type"`
			*Clinica
		}{UserTypeClinica, v})
	default:
		return nil, ErrUnknownUserType
	}
}

// ProfileJSON lets a Profile be decoded as a struct field
type ProfileJSON struct {
	Profile Profile
}

// UnmarshalJSON implements json.Unmarshaler
func (p *ProfileJSON) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		p.Profile = nil
		return nil
	}
	profile, err := DecodeProfile(data)
	if err != nil {
		return err
	}
	p.Profile = profile
	return nil
}

// MarshalJSON implements json.Marshaler
func (p ProfileJSON) MarshalJSON() ([]byte, error) {
	if p.Profile == nil {
		return []byte("null"), nil
	}
	return EncodeProfile(p.Profile)
}
