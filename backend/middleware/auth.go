package middleware

import (
	"github.com/gofiber/fiber/v2"

	"studyvault/backend/config"
	"studyvault/backend/utils"
)

// AdminMiddleware guards the moderation and analytics routes. Tokens
// are issued by the admin login after the shared secret check.
func AdminMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := utils.VerifyAdminToken(c, cfg); err != nil {
			if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusForbidden {
				return utils.Forbidden(c, fe.Message)
			}
			return utils.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}
