package middleware

import "github.com/gofiber/fiber/v2"

// Noop passes the request straight through. Kept as the minimal template for
// new middleware in this package.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
