package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carshop-api/internal/application/dto"
	"github.com/jhoicas/carshop-api/internal/application/usecase"
	"github.com/jhoicas/carshop-api/internal/domain"
)

// AppointmentHandler maneja las peticiones HTTP de agendamiento de citas.
type AppointmentHandler struct {
	uc *usecase.AppointmentUseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Book POST /api/appointments
func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	var in dto.BookAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "request body is not valid JSON"})
	}
	if err := h.uc.Book(in); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: verr.Errors})
		}
		if errors.Is(err, domain.ErrSlotUnavailable) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SLOT_UNAVAILABLE", Message: "time slot unavailable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "unexpected error"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Appointment booked successfully!"})
}
