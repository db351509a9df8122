package repository

import "github.com/jhoicas/carshop-api/internal/domain/entity"

// AppointmentRepository define el puerto de lectura de citas.
type AppointmentRepository interface {
	// List devuelve todas las citas en el orden del fixture.
	List() ([]entity.Appointment, error)
}
