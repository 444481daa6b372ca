package controllers

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"

	"studyvault/backend/config"
	"studyvault/backend/utils"
)

// AuthController gates the admin panel. Access is a single shared
// secret; a matching secret yields a short-lived session token for the
// moderation and analytics routes.
type AuthController struct {
	Cfg    *config.Config
	Logger *log.Logger
}

func NewAuthController(cfg *config.Config, logger *log.Logger) *AuthController {
	return &AuthController{Cfg: cfg, Logger: logger}
}

// AdminLogin checks the shared secret and issues a session token.
func (ac *AuthController) AdminLogin(c *fiber.Ctx) error {
	if ac.Cfg.AdminSecret == "" {
		return utils.Error(c, fiber.StatusServiceUnavailable, "Admin access is not configured")
	}

	var input struct {
		Secret string `json:"secret"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if subtle.ConstantTimeCompare([]byte(input.Secret), []byte(ac.Cfg.AdminSecret)) != 1 {
		return utils.Unauthorized(c, "Invalid secret code")
	}

	token, err := utils.GenerateAdminToken(ac.Cfg)
	if err != nil {
		ac.Logger.Printf("token generation failed: %v", err)
		return utils.InternalServerError(c, "Could not create session")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token": token,
	})
}
