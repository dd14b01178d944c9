package domain

import "strings"

// Sexo values accepted by the backend
const (
	SexoMacho = "Macho"
	SexoFemea = "Fêmea"
)

// Animal is a pet record
type Animal struct {
	ID              string   `json:"id,omitempty"`
	Nome            string   `json:"nome"`
	Especie         string   `json:"especie"`
	Raca            string   `json:"raca,omitempty"`
	Idade           *int     `json:"idade,omitempty"`
	Peso            *float64 `json:"peso,omitempty"`
	Cor             string   `json:"cor,omitempty"`
	Sexo            string   `json:"sexo,omitempty"`
	Castrado        bool     `json:"castrado"`
	HistoricoMedico string   `json:"historico_medico,omitempty"`
	Observacoes     string   `json:"observacoes,omitempty"`
	QRCodeURL       string   `json:"qr_code_url,omitempty"`
	TutorID         string   `json:"tutor_id,omitempty"`
}

// Validate mirrors the required-field checks of the animal form
func (a Animal) Validate() error {
	if strings.TrimSpace(a.Nome) == "" {
		return NewValidationError("Campo nome é obrigatório")
	}
	if strings.TrimSpace(a.Especie) == "" {
		return NewValidationError("Campo especie é obrigatório")
	}
	if a.Sexo != "" && a.Sexo != SexoMacho && a.Sexo != SexoFemea {
		return NewValidationError(`Sexo deve ser "Macho" ou "Fêmea"`)
	}
	return nil
}
