package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carshop-api/internal/application/dto"
	"github.com/jhoicas/carshop-api/internal/application/usecase"
	"github.com/jhoicas/carshop-api/internal/domain"
)

// CarHandler maneja las peticiones HTTP de registro de carros.
type CarHandler struct {
	uc *usecase.CarUseCase
}

// NewCarHandler construye el handler.
func NewCarHandler(uc *usecase.CarUseCase) *CarHandler {
	return &CarHandler{uc: uc}
}

// Register POST /api/profile/cars
func (h *CarHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterCarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "request body is not valid JSON"})
	}
	car, err := h.uc.Register(in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: verr.Errors})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "unexpected error"})
	}
	return c.Status(fiber.StatusCreated).JSON(car)
}
