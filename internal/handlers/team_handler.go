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

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) CreateSeller(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateSellerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	seller, err := h.teamService.CreateSeller(sess, &req)
	if err != nil {
		return teamError(c, err, "Failed to create seller. The email may already be in use.")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TeamMemberResponse{
		ID: seller.ID, Name: seller.Name, Email: seller.Email, Role: seller.Role,
	})
}

func (h *TeamHandler) List(c *fiber.Ctx) error {
	sess, err := tenant.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	members, err := h.teamService.ListTeam(sess)
	if err != nil {
		return teamError(c, err, "Failed to fetch team")
	}
	return c.JSON(members)
}

// UpdateUser is the super-admin user edit.
func (h *TeamHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.teamService.UpdateUserByAdmin(userID, &req)
	if err != nil {
		return teamError(c, err, "Failed to update user")
	}
	return c.JSON(user)
}

func teamError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrStoreNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidRole), errors.Is(err, services.ErrNoStore):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if isValidationMessage(err) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	slog.Error("team operation failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
