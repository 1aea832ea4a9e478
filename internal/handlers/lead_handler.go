package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/services"
	"github.com/vitartas/leadtrack/internal/tenant"
)

type LeadHandler struct {
	leadService *services.LeadService
}

func NewLeadHandler(leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

func (h *LeadHandler) Create(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	lead, err := h.leadService.Create(sess, &req)
	if err != nil {
		return leadError(c, err, "Failed to create lead")
	}
	return c.Status(fiber.StatusCreated).JSON(lead)
}

func (h *LeadHandler) List(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	leads, err := h.leadService.ListForStore(sess)
	if err != nil {
		return leadError(c, err, "Failed to fetch leads")
	}
	return c.JSON(leads)
}

// ListAll is the cross-tenant board for the super admin.
func (h *LeadHandler) ListAll(c *fiber.Ctx) error {
	leads, err := h.leadService.ListAll()
	if err != nil {
		slog.Error("failed to list global leads", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch leads",
		})
	}
	return c.JSON(leads)
}

func (h *LeadHandler) UpdateStatus(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	leadID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid lead ID",
		})
	}

	var req dto.UpdateLeadStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	lead, err := h.leadService.UpdateStatus(sess, leadID, req.Status)
	if err != nil {
		return leadError(c, err, "Failed to update lead status")
	}
	return c.JSON(lead)
}

func leadError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrLeadNotFound), errors.Is(err, services.ErrStoreNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNotStoreData):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidLeadStatus),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrNoStore):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if isValidationMessage(err) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Error("lead operation failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
