package handlers

import (
	"errors"
	"strings"

	"vetcare-web/internal/adapters/http/middleware"
	"vetcare-web/internal/core/domain"
	"vetcare-web/internal/core/services"
	"vetcare-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const msgInProgress = "Operação em andamento, aguarde"

// respondError maps a failure to an HTTP answer:
// validation 400, backend rejection with the backend's status, network 502.
func respondError(c *fiber.Ctx, log *logrus.Entry, err error, fallback string) error {
	if errors.Is(err, services.ErrOperationInProgress) {
		return response.Conflict(c, msgInProgress)
	}
	if errors.Is(err, services.ErrNotAuthenticated) {
		return response.Unauthorized(c, "Sessão expirada, faça login novamente")
	}
	if errors.Is(err, services.ErrRoleMismatch) {
		return response.Conflict(c, "Perfil não corresponde à sessão")
	}

	var de *domain.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case domain.KindValidation:
			return response.BadRequest(c, de.Message)
		case domain.KindAuthRejected:
			status := de.Status
			if status < fiber.StatusBadRequest {
				status = fiber.StatusUnauthorized
			}
			return response.Error(c, status, de.Message)
		case domain.KindNetwork:
			log.WithError(err).Warn("backend unreachable")
			return response.BadGateway(c, de.Message)
		}
	}

	log.WithError(err).WithField("path", c.Path()).Error(fallback)
	return response.InternalServerError(c, fallback)
}

// sessionView is the header data every page carries
func sessionView(c *fiber.Ctx) fiber.Map {
	s := middleware.CurrentBrowser(c).Session.Snapshot()
	view := fiber.Map{
		"authenticated": s.Authenticated,
		"loading":       s.Loading,
	}
	if s.User != nil {
		view["user"] = domain.ProfileJSON{Profile: s.User}
		view["home"] = domain.RoleHome(s.User)
	}
	return view
}

// page builds the data of a rendered page
func page(c *fiber.Ctx, title string, content fiber.Map) fiber.Map {
	data := fiber.Map{
		"title":   title,
		"session": sessionView(c),
	}
	for k, v := range content {
		data[k] = v
	}
	return data
}

// safeReturnPath accepts only same-site absolute paths
func safeReturnPath(from string) bool {
	return strings.HasPrefix(from, "/") && !strings.HasPrefix(from, "//") && !strings.HasPrefix(from, "/\\")
}
