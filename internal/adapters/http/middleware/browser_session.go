package middleware

import (
	"time"

	"vetcare-web/internal/config"
	"vetcare-web/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const browserLocal = "browser"

// BrowserSession identifies the browser by its session cookie, issuing a
// new id when the cookie is missing or malformed, and attaches the
// browser's controller to the request.
func BrowserSession(registry *services.BrowserRegistry, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cfg.Session.CookieName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		// Re-issued on every request so the expiry slides with use
		c.Cookie(&fiber.Cookie{
			Name:     cfg.Session.CookieName,
			Value:    id,
			Path:     "/",
			Domain:   cfg.Cookie.Domain,
			Expires:  time.Now().Add(cfg.Session.Idle),
			Secure:   cfg.Cookie.Secure,
			HTTPOnly: true,
			SameSite: cfg.Cookie.SameSite,
		})

		c.Locals(browserLocal, registry.Get(id))
		return c.Next()
	}
}

// CurrentBrowser returns the browser attached by BrowserSession
func CurrentBrowser(c *fiber.Ctx) *services.Browser {
	b, _ := c.Locals(browserLocal).(*services.Browser)
	return b
}
