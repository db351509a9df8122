package usecase

import (
	"time"

	"github.com/jhoicas/carshop-api/internal/application/dto"
	"github.com/jhoicas/carshop-api/internal/domain"
	"github.com/jhoicas/carshop-api/internal/domain/validation"
)

// Regla fija del fixture: el Premium Wash no se agenda entre las 10 y las 12
// (hora local del servidor, rango inclusivo). No es un scheduler generalizable.
const (
	premiumWashOfferingID = "offering-1"
	blockedHourFrom       = 10
	blockedHourTo         = 12
)

// AppointmentUseCase caso de uso de agendamiento de citas.
type AppointmentUseCase struct{}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase() *AppointmentUseCase {
	return &AppointmentUseCase{}
}

// Book valida el payload y aplica la regla de conflicto de horario. En éxito
// no persiste nada: el backend de demostración solo acusa recibo.
func (uc *AppointmentUseCase) Book(in dto.BookAppointmentRequest) error {
	errs := validation.Run([]validation.Rule{
		validation.Required("carId", in.CarID),
		validation.Required("offeringId", in.OfferingID),
		validation.DateTime("scheduledTime", in.ScheduledTime),
	})
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	scheduled, err := time.Parse(time.RFC3339, in.ScheduledTime)
	if err != nil {
		// inalcanzable: la regla DateTime ya validó el formato
		return &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "scheduledTime", Message: "scheduledTime must be a valid ISO-8601 date-time"},
		}}
	}

	hour := scheduled.In(time.Local).Hour()
	if in.OfferingID == premiumWashOfferingID && hour >= blockedHourFrom && hour <= blockedHourTo {
		return domain.ErrSlotUnavailable
	}
	return nil
}
