package utils

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse is the envelope for successful responses.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for errors. Redirect, when set, is the
// safe step the client should navigate to instead of crashing.
type ErrorResponse struct {
	Success  bool        `json:"success"`
	Error    string      `json:"error"`
	Message  string      `json:"message,omitempty"`
	Details  interface{} `json:"details,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
}

// Success creates a successful JSON response.
func Success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(SuccessResponse{
		Success: true,
		Data:    data,
	})
}

// Error creates a JSON error response.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: message,
	})
}

// ErrorWithRedirect creates a JSON error response carrying the step the
// client should fall back to.
func ErrorWithRedirect(c *fiber.Ctx, status int, message, redirect string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success:  false,
		Error:    http.StatusText(status),
		Message:  message,
		Redirect: redirect,
	})
}

// ValidationError creates a 422 response with per-field errors.
func ValidationError(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success: false,
		Error:   "Validation Error",
		Details: errors,
	})
}

// Created sends a 201 Created response.
func Created(c *fiber.Ctx, data interface{}) error {
	return Success(c, fiber.StatusCreated, data)
}

// NoContent sends a 204 No Content response.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden response.
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// StoreUnavailable sends a 503 telling the client to fall back to the
// regulation step; used when the store is unconfigured or unreachable.
func StoreUnavailable(c *fiber.Ctx) error {
	return ErrorWithRedirect(c, fiber.StatusServiceUnavailable,
		"Study material store is unavailable. Please try again later.", "/")
}
