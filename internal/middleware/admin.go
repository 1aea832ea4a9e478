package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/models"
	"github.com/vitartas/leadtrack/internal/tenant"
)

// SuperAdminRequired gates the cross-tenant admin panel.
func SuperAdminRequired() fiber.Handler {
	return requireRole(models.RoleSuperAdmin)
}

// OwnerRequired gates team and store-settings management. SELLER accounts
// are explicitly denied; SUPER_ADMIN passes everywhere.
func OwnerRequired() fiber.Handler {
	return requireRole(models.RoleOwner, models.RoleSuperAdmin)
}

func requireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := tenant.FromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		for _, role := range roles {
			if sess.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "No permission for this operation",
		})
	}
}
