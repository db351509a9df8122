package memory

import "github.com/jhoicas/carshop-api/internal/domain/entity"

// AppointmentRepository lee las citas del Dataset.
type AppointmentRepository struct {
	ds *Dataset
}

// NewAppointmentRepository construye el repositorio.
func NewAppointmentRepository(ds *Dataset) *AppointmentRepository {
	return &AppointmentRepository{ds: ds}
}

// List devuelve una copia del slice de citas en el orden del fixture.
func (r *AppointmentRepository) List() ([]entity.Appointment, error) {
	out := make([]entity.Appointment, len(r.ds.Appointments))
	copy(out, r.ds.Appointments)
	return out, nil
}
