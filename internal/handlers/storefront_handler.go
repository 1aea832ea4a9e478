package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/vitartas/leadtrack/internal/dto"
	"github.com/vitartas/leadtrack/internal/services"
)

// StorefrontHandler serves the public, unauthenticated storefront: the
// vehicle catalog behind a store slug and the lead-intake form.
type StorefrontHandler struct {
	storeService *services.StoreService
	leadService  *services.LeadService
}

func NewStorefrontHandler(storeService *services.StoreService, leadService *services.LeadService) *StorefrontHandler {
	return &StorefrontHandler{storeService: storeService, leadService: leadService}
}

func (h *StorefrontHandler) Get(c *fiber.Ctx) error {
	resp, err := h.storeService.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrStoreNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Store not found",
			})
		}
		slog.Error("storefront load failed", "error", err, "slug", c.Params("slug"))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load storefront",
		})
	}
	return c.JSON(resp)
}

// CreateLead captures an anonymous visit intent and hands back the check-in
// code the visitor shows at the store.
func (h *StorefrontHandler) CreateLead(c *fiber.Ctx) error {
	var req dto.PublicLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.leadService.CreatePublic(c.Params("slug"), &req)
	if err != nil {
		return leadError(c, err, "Failed to register lead")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
