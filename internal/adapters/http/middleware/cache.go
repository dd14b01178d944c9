package middleware

import "github.com/gofiber/fiber/v2"

// NoStore keeps browsers and proxies from caching pages that carry a
// user's session data
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderCacheControl, "no-store, private")
		c.Vary(fiber.HeaderCookie)
		return err
	}
}
