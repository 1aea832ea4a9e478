package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vitartas/leadtrack/internal/dto"
)

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

// isValidationMessage spots the services' plain input-validation errors
// ("... are required") so they surface as 400s instead of generic 500s.
func isValidationMessage(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "require") || strings.Contains(msg, "cannot belong")
}
