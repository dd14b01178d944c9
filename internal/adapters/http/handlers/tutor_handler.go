package handlers

import (
	"vetcare-web/internal/adapters/http/middleware"
	"vetcare-web/internal/core/domain"
	"vetcare-web/internal/pkg/pagination"
	"vetcare-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// TutorHandler serves the tutor dashboard
type TutorHandler struct {
	log *logrus.Entry
}

// NewTutorHandler creates a new tutor dashboard handler
func NewTutorHandler(log *logrus.Entry) *TutorHandler {
	return &TutorHandler{log: log}
}

// Dashboard handles GET /dashboard/tutor
func (h *TutorHandler) Dashboard(c *fiber.Ctx) error {
	b := middleware.CurrentBrowser(c)
	ctx := c.UserContext()

	animals, err := b.Animals.List(ctx)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao carregar dados")
	}
	appointments, err := b.Appointments.List(ctx)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao carregar dados")
	}

	upcoming := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status.Active() {
			upcoming = append(upcoming, a)
		}
	}

	return response.Success(c, "", page(c, "Painel do Tutor", fiber.Map{
		"stats": fiber.Map{
			"animais":      len(animals),
			"agendamentos": len(appointments),
			"proximos":     len(upcoming),
		},
		"animais":  animals,
		"proximos": upcoming,
	}))
}

// Animals handles GET /dashboard/tutor/animais
func (h *TutorHandler) Animals(c *fiber.Ctx) error {
	animals, err := middleware.CurrentBrowser(c).Animals.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, "Erro ao carregar animais")
	}
	return response.Success(c, "", page(c, "Meus Animais", fiber.Map{"animais": animals}))
}

// CreateAnimal handles POST /dashboard/tutor/animais
func (h *TutorHandler) CreateAnimal(c *fiber.Ctx) error {
	var animal domain.Animal
	if err := c.BodyParser(&animal); err != nil {
		return response.BadRequest(c, "Dados inválidos")
	}

	created, err := middleware.CurrentBrowser(c).Animals.Create(c.UserContext(), animal)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao cadastrar animal")
	}
	return response.Created(c, "Animal cadastrado com sucesso", created)
}

// UpdateAnimal handles PUT /dashboard/tutor/animais/:id
func (h *TutorHandler) UpdateAnimal(c *fiber.Ctx) error {
	var animal domain.Animal
	if err := c.BodyParser(&animal); err != nil {
		return response.BadRequest(c, "Dados inválidos")
	}

	updated, err := middleware.CurrentBrowser(c).Animals.Update(c.UserContext(), c.Params("id"), animal)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao atualizar animal")
	}
	return response.Success(c, "Animal atualizado com sucesso", updated)
}

// Appointments handles GET /dashboard/tutor/agendamentos
func (h *TutorHandler) Appointments(c *fiber.Ctx) error {
	b := middleware.CurrentBrowser(c)
	ctx := c.UserContext()

	appointments, err := b.Appointments.List(ctx)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao carregar agendamentos")
	}
	animals, err := b.Animals.List(ctx)
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
		"animais":      animals,
	}))
}

// AvailableTimes handles GET /dashboard/tutor/agendamentos/horarios?email_clinica=&data=
func (h *TutorHandler) AvailableTimes(c *fiber.Ctx) error {
	email, date := c.Query("email_clinica"), c.Query("data")
	if email == "" || date == "" {
		return response.BadRequest(c, "Email da clínica e data são obrigatórios")
	}

	times, err := middleware.CurrentBrowser(c).Appointments.AvailableTimes(c.UserContext(), email, date)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao carregar horários")
	}
	return response.Success(c, "", times)
}

// CreateAppointment handles POST /dashboard/tutor/agendamentos
func (h *TutorHandler) CreateAppointment(c *fiber.Ctx) error {
	var req domain.NewAppointment
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Dados inválidos")
	}

	created, err := middleware.CurrentBrowser(c).Appointments.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao criar agendamento")
	}
	return response.Created(c, "Agendamento solicitado com sucesso", created)
}

// CancelAppointment handles DELETE /dashboard/tutor/agendamentos/:id
func (h *TutorHandler) CancelAppointment(c *fiber.Ctx) error {
	if err := middleware.CurrentBrowser(c).Appointments.Cancel(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err, "Erro ao cancelar agendamento")
	}
	return response.Success(c, "Agendamento cancelado com sucesso", nil)
}
