package handlers

import (
	"vetcare-web/internal/adapters/http/middleware"
	"vetcare-web/internal/core/domain"
	"vetcare-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthHandler serves the login, sign-up and logout flows
type AuthHandler struct {
	log *logrus.Entry
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(log *logrus.Entry) *AuthHandler {
	return &AuthHandler{log: log}
}

type loginRequest struct {
	Email string          `json:"email"`
	Senha string          `json:"senha"`
	Tipo  domain.UserType `json:"tipo"`
	From  string          `json:"from"`
}

type tutorRegisterRequest struct {
	domain.TutorRegistration
	ConfirmarSenha string `json:"confirmar_senha"`
}

type clinicaRegisterRequest struct {
	domain.ClinicaRegistration
	ConfirmarSenha string `json:"confirmar_senha"`
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return response.Success(c, "", page(c, "Entrar", fiber.Map{
		"from":  c.Query("from"),
		"tipos": []domain.UserType{domain.UserTypeTutor, domain.UserTypeClinica},
	}))
}

// Login handles POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Dados inválidos")
	}
	if req.Tipo == "" {
		req.Tipo = domain.UserTypeTutor
	}
	if req.From == "" {
		req.From = c.Query("from")
	}

	b := middleware.CurrentBrowser(c)
	user, err := b.Session.Login(c.UserContext(), req.Email, req.Senha, req.Tipo)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao fazer login")
	}

	target := domain.RoleHome(user)
	if req.From != "" && req.From != "/" && safeReturnPath(req.From) {
		target = req.From
	}
	return response.Navigate(c, "Login realizado com sucesso", target, domain.ProfileJSON{Profile: user})
}

// RegisterPage handles GET /cadastro
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return response.Success(c, "", page(c, "Cadastro", fiber.Map{
		"tipos": []domain.UserType{domain.UserTypeTutor, domain.UserTypeClinica},
	}))
}

// RegisterTutor handles POST /cadastro/tutor
func (h *AuthHandler) RegisterTutor(c *fiber.Ctx) error {
	var req tutorRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Dados inválidos")
	}
	reg := req.TutorRegistration
	reg.ConfirmarSenha = req.ConfirmarSenha

	user, err := middleware.CurrentBrowser(c).Session.RegisterTutor(c.UserContext(), reg)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao criar conta")
	}
	return response.Navigate(c, "Conta criada com sucesso", domain.TutorHome, domain.ProfileJSON{Profile: user})
}

// RegisterClinica handles POST /cadastro/clinica
func (h *AuthHandler) RegisterClinica(c *fiber.Ctx) error {
	var req clinicaRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Dados inválidos")
	}
	reg := req.ClinicaRegistration
	reg.ConfirmarSenha = req.ConfirmarSenha

	user, err := middleware.CurrentBrowser(c).Session.RegisterClinica(c.UserContext(), reg)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao criar conta")
	}
	return response.Navigate(c, "Conta criada com sucesso", domain.ClinicaHome, domain.ProfileJSON{Profile: user})
}

// Logout handles POST /logout. It always succeeds.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	middleware.CurrentBrowser(c).Session.Logout(c.UserContext())
	return response.Navigate(c, "Logout realizado com sucesso", "/", nil)
}
