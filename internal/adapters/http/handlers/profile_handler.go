package handlers

import (
	"vetcare-web/internal/adapters/http/middleware"
	"vetcare-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProfileHandler serves the settings page of both dashboards
type ProfileHandler struct {
	log *logrus.Entry
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(log *logrus.Entry) *ProfileHandler {
	return &ProfileHandler{log: log}
}

// Settings handles GET /dashboard/{tutor,clinica}/configuracoes
func (h *ProfileHandler) Settings(c *fiber.Ctx) error {
	return response.Success(c, "", page(c, "Configurações", nil))
}

// Refresh handles POST /dashboard/{tutor,clinica}/configuracoes/sincronizar.
// It reloads the profile from the backend into the session.
func (h *ProfileHandler) Refresh(c *fiber.Ctx) error {
	b := middleware.CurrentBrowser(c)
	ctx := c.UserContext()

	res, err := b.Auth.Verify(ctx)
	if err != nil {
		return respondError(c, h.log, err, "Erro ao atualizar perfil")
	}
	if !res.Valid || res.User == nil {
		return response.Unauthorized(c, "Sessão expirada, faça login novamente")
	}
	if err := b.Session.UpdateUser(ctx, res.User); err != nil {
		return respondError(c, h.log, err, "Erro ao atualizar perfil")
	}

	return response.Success(c, "Perfil atualizado com sucesso", sessionView(c))
}
