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

type VehicleHandler struct {
	vehicleService *services.VehicleService
}

func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	vehicle, err := h.vehicleService.Create(sess, &req)
	if err != nil {
		return vehicleError(c, err, "Failed to register vehicle")
	}
	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

func (h *VehicleHandler) List(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	vehicles, err := h.vehicleService.ListForStore(sess)
	if err != nil {
		return vehicleError(c, err, "Failed to fetch vehicles")
	}
	return c.JSON(vehicles)
}

func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	vehicleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid vehicle ID",
		})
	}

	var req dto.VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	vehicle, err := h.vehicleService.Update(sess, vehicleID, &req)
	if err != nil {
		return vehicleError(c, err, "Failed to update vehicle")
	}
	return c.JSON(vehicle)
}

func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	vehicleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid vehicle ID",
		})
	}

	if err := h.vehicleService.Delete(sess, vehicleID); err != nil {
		return vehicleError(c, err, "Failed to delete vehicle")
	}
	return c.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}

func vehicleError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrVehicleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNotStoreData):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrNoStore),
		errors.Is(err, services.ErrInvalidPrice):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if isValidationMessage(err) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Error("vehicle operation failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
