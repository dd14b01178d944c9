package domain

import (
	"strings"
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPendente  AppointmentStatus = "pendente"
	StatusAceito    AppointmentStatus = "aceito"
	StatusRecusado  AppointmentStatus = "recusado"
	StatusConcluido AppointmentStatus = "concluido"
	StatusCancelado AppointmentStatus = "cancelado"
)

// Decidable reports whether a clinic may still accept or refuse
func (s AppointmentStatus) Decidable() bool {
	return s == StatusPendente
}

// Cancellable reports whether the tutor may still cancel
func (s AppointmentStatus) Cancellable() bool {
	return s != StatusConcluido && s != StatusCancelado
}

// Active reports whether the appointment occupies its time slot
func (s AppointmentStatus) Active() bool {
	return s == StatusPendente || s == StatusAceito
}

// Appointment is a booking between a tutor's animal and a clinic
type Appointment struct {
	ID              string            `json:"id,omitempty"`
	TutorID         string            `json:"tutor_id,omitempty"`
	ClinicaID       string            `json:"clinica_id,omitempty"`
	AnimalID        string            `json:"animal_id"`
	DataAgendamento string            `json:"data_agendamento"`
	Horario         string            `json:"horario"`
	TipoConsulta    string            `json:"tipo_consulta,omitempty"`
	Observacoes     string            `json:"observacoes,omitempty"`
	Status          AppointmentStatus `json:"status,omitempty"`
	MotivoRecusa    string            `json:"motivo_recusa,omitempty"`
	NomeAnimal      string            `json:"nome_animal,omitempty"`
	NomeTutor       string            `json:"nome_tutor,omitempty"`
	NomeClinica     string            `json:"nome_clinica,omitempty"`
}

// NewAppointment is the booking form sent by a tutor
type NewAppointment struct {
	AnimalID        string `json:"animal_id"`
	EmailClinica    string `json:"email_clinica"`
	DataAgendamento string `json:"data_agendamento"`
	Horario         string `json:"horario"`
	TipoConsulta    string `json:"tipo_consulta,omitempty"`
	Observacoes     string `json:"observacoes,omitempty"`
}

// Validate checks required fields and the date/time formats
func (a NewAppointment) Validate() error {
	if a.AnimalID == "" {
		return NewValidationError("Campo animal_id é obrigatório")
	}
	if strings.TrimSpace(a.EmailClinica) == "" {
		return NewValidationError("Campo email_clinica é obrigatório")
	}
	if _, err := time.Parse("2006-01-02", a.DataAgendamento); err != nil {
		return NewValidationError("Formato de data inválido. Use YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", a.Horario); err != nil {
		return NewValidationError("Formato de horário inválido. Use HH:MM")
	}
	return nil
}

// StatusUpdate is the clinic's decision on a pending appointment
type StatusUpdate struct {
	Status       AppointmentStatus `json:"status"`
	MotivoRecusa string            `json:"motivo_recusa"`
}

// Validate allows only aceito/recusado and requires a reason to refuse
func (u StatusUpdate) Validate() error {
	switch u.Status {
	case StatusAceito:
		return nil
	case StatusRecusado:
		if strings.TrimSpace(u.MotivoRecusa) == "" {
			return NewValidationError("Motivo da recusa é obrigatório")
		}
		return nil
	default:
		return NewValidationError("Status deve ser um dos: aceito, recusado")
	}
}

// AvailableTimes lists a clinic's free and taken slots on one day
type AvailableTimes struct {
	Available []string `json:"available_times"`
	Occupied  []string `json:"occupied_times"`
}
