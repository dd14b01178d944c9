package handlers

import (
	"vetcare-web/internal/adapters/http/middleware"
	"vetcare-web/internal/core/domain"
	"vetcare-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// PageHandler serves the public pages
type PageHandler struct {
	log *logrus.Entry
}

// NewPageHandler creates a new page handler
func NewPageHandler(log *logrus.Entry) *PageHandler {
	return &PageHandler{log: log}
}

type feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var tutorFeatures = []feature{
	{"Agendamento Online", "Agende consultas com clínicas veterinárias de forma rápida e prática"},
	{"Gestão de Pets", "Mantenha todos os dados dos seus pets organizados em um só lugar"},
	{"Carteirinha Digital", "Carteirinha com QR Code para identificação rápida do seu pet"},
	{"Relatórios de Saúde", "Acompanhe a evolução da saúde do seu pet com relatórios detalhados"},
}

var clinicaFeatures = []feature{
	{"Gestão de Pacientes", "Sistema completo para gerenciar todos os animais atendidos"},
	{"Agenda Inteligente", "Aceite ou recuse solicitações de consulta em poucos cliques"},
	{"Prontuário Digital", "Consulte o histórico médico dos pacientes pelo QR Code"},
}

// Home handles GET /
func (h *PageHandler) Home(c *fiber.Ctx) error {
	return response.Success(c, "", page(c, "VetCare", fiber.Map{
		"headline": "Cuidado completo para quem você ama",
		"features": tutorFeatures,
	}))
}

// About handles GET /sobre
func (h *PageHandler) About(c *fiber.Ctx) error {
	return response.Success(c, "", page(c, "Sobre", fiber.Map{
		"mission": "Conectar tutores e clínicas veterinárias para um cuidado mais simples e organizado",
	}))
}

// Services handles GET /servicos
func (h *PageHandler) Services(c *fiber.Ctx) error {
	return response.Success(c, "", page(c, "Serviços", fiber.Map{
		"tutor":   tutorFeatures,
		"clinica": clinicaFeatures,
	}))
}

// ContactPage handles GET /contato
func (h *PageHandler) ContactPage(c *fiber.Ctx) error {
	return response.Success(c, "", page(c, "Contato", nil))
}

// SendContact handles POST /contato
func (h *PageHandler) SendContact(c *fiber.Ctx) error {
	var msg domain.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return response.BadRequest(c, "Dados inválidos")
	}

	message, err := middleware.CurrentBrowser(c).Contact.Send(c.UserContext(), msg)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao enviar mensagem")
	}
	if message == "" {
		message = "Mensagem enviada com sucesso"
	}
	return response.Created(c, message, nil)
}

// AnimalProfile handles GET /animal/:id, the page behind the pet card QR code
func (h *PageHandler) AnimalProfile(c *fiber.Ctx) error {
	animal, err := middleware.CurrentBrowser(c).Animals.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err, "Erro ao carregar animal")
	}
	return response.Success(c, "", page(c, animal.Nome, fiber.Map{"animal": animal}))
}
