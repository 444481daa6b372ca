package utils

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"studyvault/backend/config"
)

// GenerateAdminToken issues the session token handed out after the
// admin secret check passes.
func GenerateAdminToken(cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// VerifyAdminToken checks the Authorization header for a valid admin
// session token.
func VerifyAdminToken(c *fiber.Ctx, cfg *config.Config) error {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	if role, _ := claims["role"].(string); role != "admin" {
		return fiber.NewError(fiber.StatusForbidden, "Admin access required")
	}

	return nil
}
