package handlers

import (
	"strings"

	"vetcare-web/internal/adapters/http/middleware"
	"vetcare-web/internal/core/domain"
	"vetcare-web/internal/pkg/pagination"
	"vetcare-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ClinicaHandler serves the clinic dashboard
type ClinicaHandler struct {
	log *logrus.Entry
}

// NewClinicaHandler creates a new clinic dashboard handler
func NewClinicaHandler(log *logrus.Entry) *ClinicaHandler {
	return &ClinicaHandler{log: log}
}

// Dashboard handles GET /dashboard/clinica
func (h *ClinicaHandler) Dashboard(c *fiber.Ctx) error {
	appointments, err := middleware.CurrentBrowser(c).Appointments.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, "Erro ao carregar dados")
	}

	byStatus := map[domain.AppointmentStatus]int{}
	pending := make([]domain.Appointment, 0)
	for _, a := range appointments {
		byStatus[a.Status]++
		if a.Status.Decidable() {
			pending = append(pending, a)
		}
	}

	return response.Success(c, "", page(c, "Painel da Clínica", fiber.Map{
		"stats": fiber.Map{
			"total":      len(appointments),
			"pendentes":  byStatus[domain.StatusPendente],
			"aceitos":    byStatus[domain.StatusAceito],
			"concluidos": byStatus[domain.StatusConcluido],
		},
		"pendentes": pending,
	}))
}

// Animals handles GET /dashboard/clinica/animais, searching with ?q=
func (h *ClinicaHandler) Animals(c *fiber.Ctx) error {
	b := middleware.CurrentBrowser(c)
	query := strings.TrimSpace(c.Query("q"))

	var (
		animals []domain.Animal
		err     error
	)
	if query != "" {
		animals, err = b.Animals.Search(c.UserContext(), query)
	} else {
		animals, err = b.Animals.List(c.UserContext())
	}
	if err != nil {
		return respondError(c, h.log, err, "Erro ao carregar pacientes")
	}

	items, meta := pagination.Slice(animals, pagination.GetParams(c))
	return response.Success(c, "", page(c, "Pacientes", fiber.Map{
		"q":       query,
		"animais": items,
		"meta":    meta,
	}))
}

// Appointments handles GET /dashboard/clinica/agendamentos
func (h *ClinicaHandler) Appointments(c *fiber.Ctx) error {
	appointments, err := middleware.CurrentBrowser(c).Appointments.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, "Erro ao carregar agendamentos")
	}
	if status := domain.AppointmentStatus(c.Query("status")); status != "" {
		appointments = filterByStatus(appointments, status)
	}
	items, meta := pagination.Slice(appointments, pagination.GetParams(c))
	return response.Success(c, "", page(c, "Agendamentos", fiber.Map{
		"agendamentos": items,
		"meta":         meta,
	}))
}

// UpdateStatus handles PUT /dashboard/clinica/agendamentos/:id/status
func (h *ClinicaHandler) UpdateStatus(c *fiber.Ctx) error {
	var update domain.StatusUpdate
	if err := c.BodyParser(&update); err != nil {
		return response.BadRequest(c, "Dados inválidos")
	}

	if err := middleware.CurrentBrowser(c).Appointments.UpdateStatus(c.UserContext(), c.Params("id"), update); err != nil {
		return respondError(c, h.log, err, "Erro ao atualizar agendamento")
	}

	message := "Agendamento aceito"
	if update.Status == domain.StatusRecusado {
		message = "Agendamento recusado"
	}
	return response.Success(c, message, nil)
}

func filterByStatus(appointments []domain.Appointment, status domain.AppointmentStatus) []domain.Appointment {
	out := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}
