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

// StoreHandler covers the super-admin store panel plus the owner-facing
// settings endpoints.
type StoreHandler struct {
	storeService *services.StoreService
}

func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	store, err := h.storeService.Create(&req)
	if err != nil {
		return storeError(c, err, "Failed to create store. Check whether the CNPJ or slug already exist.")
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// Register is the public self-service signup.
func (h *StoreHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	store, err := h.storeService.RegisterPublic(&req)
	if err != nil {
		return storeError(c, err, "Failed to register store")
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

func (h *StoreHandler) List(c *fiber.Ctx) error {
	stores, err := h.storeService.ListWithCounts()
	if err != nil {
		slog.Error("failed to list stores", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list stores",
		})
	}
	return c.JSON(stores)
}

func (h *StoreHandler) Update(c *fiber.Ctx) error {
	storeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid store ID",
		})
	}

	var req dto.UpdateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	store, err := h.storeService.Update(storeID, &req)
	if err != nil {
		return storeError(c, err, "Failed to update store")
	}
	return c.JSON(store)
}

func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	storeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid store ID",
		})
	}

	if err := h.storeService.Delete(storeID); err != nil {
		return storeError(c, err, "Failed to delete store")
	}
	return c.JSON(fiber.Map{"message": "Store deleted successfully"})
}

func (h *StoreHandler) ToggleSubscription(c *fiber.Ctx) error {
	storeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid store ID",
		})
	}

	store, err := h.storeService.ToggleSubscription(storeID)
	if err != nil {
		return storeError(c, err, "Failed to toggle subscription")
	}
	return c.JSON(store)
}

// GetOwn returns the caller's store for the settings screen.
func (h *StoreHandler) GetOwn(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	store, err := h.storeService.GetForSession(sess)
	if err != nil {
		return storeError(c, err, "Failed to load store")
	}
	return c.JSON(store)
}

func (h *StoreHandler) UpdateSettings(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.StoreSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	store, err := h.storeService.UpdateSettings(sess, &req)
	if err != nil {
		return storeError(c, err, "Failed to update settings")
	}
	return c.JSON(store)
}

// storeError maps store-service sentinels to HTTP codes; anything unknown is
// logged and hidden behind the fallback message.
func storeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrSlugTaken),
		errors.Is(err, services.ErrCNPJTaken),
		errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrStoreNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidPlan), errors.Is(err, services.ErrNoStore):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	// Unvalidated input errors read fine as 400s; keep DB failures generic.
	if isValidationMessage(err) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Error("store operation failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
