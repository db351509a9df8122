package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carshop-api/internal/application/dto"
	"github.com/jhoicas/carshop-api/internal/application/usecase"
	"github.com/jhoicas/carshop-api/internal/domain"
)

// ProfileHandler maneja las peticiones HTTP del perfil del cliente.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile GET /api/profile
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "unknown or missing identity"})
	}
	customer, err := h.uc.GetProfile(identity)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "only customers have a profile"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Customer profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "unexpected error"})
	}
	return c.JSON(customer)
}

// ListAppointments GET /api/profile/appointments
func (h *ProfileHandler) ListAppointments(c *fiber.Ctx) error {
	list, err := h.uc.ListAppointments(GetIdentity(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "unexpected error"})
	}
	return c.JSON(list)
}
