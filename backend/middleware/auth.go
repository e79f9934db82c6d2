package middleware

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/backend/config"
)

// CacheClearAuth gates the cache-invalidation endpoint behind the shared
// secret passed as ?token=. With no secret configured every request is
// rejected.
func CacheClearAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Query("token")
		if cfg.CacheClearToken == "" || token != cfg.CacheClearToken {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}
