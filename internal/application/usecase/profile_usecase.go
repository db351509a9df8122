package usecase

import (
	"github.com/jhoicas/carshop-api/internal/domain"
	"github.com/jhoicas/carshop-api/internal/domain/entity"
	"github.com/jhoicas/carshop-api/internal/domain/repository"
)

// ProfileUseCase casos de uso del perfil del cliente autenticado.
type ProfileUseCase struct {
	customers    repository.CustomerRepository
	appointments repository.AppointmentRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(customers repository.CustomerRepository, appointments repository.AppointmentRepository) *ProfileUseCase {
	return &ProfileUseCase{customers: customers, appointments: appointments}
}

// GetProfile devuelve el perfil del cliente asociado a la identidad. Solo los
// usuarios con rol CUSTOMER tienen perfil; un ProfileID que no resuelve es
// domain.ErrNotFound, nunca un pánico.
func (uc *ProfileUseCase) GetProfile(identity *entity.User) (*entity.Customer, error) {
	if identity.Role != entity.RoleCustomer {
		return nil, domain.ErrForbidden
	}
	customer, err := uc.customers.GetByID(identity.ProfileID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// ListAppointments devuelve todas las citas del fixture sin filtrar por la
// identidad. El comportamiento sin scoping viene del diseño original del mock
// y se conserva tal cual.
func (uc *ProfileUseCase) ListAppointments(_ *entity.User) ([]entity.Appointment, error) {
	return uc.appointments.List()
}
