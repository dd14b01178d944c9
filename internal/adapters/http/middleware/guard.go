package middleware

import (
	"net/url"
	"time"

	"vetcare-web/internal/core/services"
	"vetcare-web/internal/pkg/metrics"
	"vetcare-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Guard enforces a route requirement. While the browser's session is still
// being restored it waits up to wait for it, then answers 503.
func Guard(req services.RouteRequirement, wait time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b := CurrentBrowser(c)
		if b == nil {
			return fiber.ErrInternalServerError
		}

		requested := c.OriginalURL()
		d := services.Decide(b.Session.Snapshot(), req, requested)
		if d.Action == services.ActionWait {
			timer := time.NewTimer(wait)
			select {
			case <-b.Session.Ready():
			case <-timer.C:
			}
			timer.Stop()
			d = services.Decide(b.Session.Snapshot(), req, requested)
		}

		metrics.GuardDecisions.WithLabelValues(d.Action.String()).Inc()

		switch d.Action {
		case services.ActionWait:
			return response.Loading(c, "1")
		case services.ActionRedirect:
			return c.Redirect(RedirectLocation(d), fiber.StatusFound)
		default:
			return c.Next()
		}
	}
}

// RedirectLocation builds the redirect target, carrying From as ?from=
func RedirectLocation(d services.Decision) string {
	if d.From == "" {
		return d.Location
	}
	return d.Location + "?from=" + url.QueryEscape(d.From)
}
