package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carshop-api/internal/application/dto"
	"github.com/jhoicas/carshop-api/internal/application/usecase"
)

// OfferingHandler maneja las peticiones HTTP del catálogo de servicios.
type OfferingHandler struct {
	uc *usecase.OfferingUseCase
}

// NewOfferingHandler construye el handler.
func NewOfferingHandler(uc *usecase.OfferingUseCase) *OfferingHandler {
	return &OfferingHandler{uc: uc}
}

// List GET /api/offerings
func (h *OfferingHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "unexpected error"})
	}
	return c.JSON(list)
}
