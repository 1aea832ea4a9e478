package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/services"
	"github.com/vitartas/leadtrack/internal/tenant"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	stats, err := h.dashboardService.Stats(sess)
	if err != nil {
		if errors.Is(err, services.ErrNoStore) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("dashboard stats failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load dashboard",
		})
	}
	return c.JSON(stats)
}
