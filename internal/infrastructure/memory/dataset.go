// Package memory implementa los puertos de repository sobre colecciones fijas
// en memoria. El Dataset se construye una vez al arrancar, se inyecta explícito
// en cada repositorio (sin singletons) y nunca se muta: los endpoints de
// creación validan y responden sin escribir nada.
package memory

import "github.com/jhoicas/carshop-api/internal/domain/entity"

// Dataset agrupa los fixtures del proceso. Offerings y Appointments son slices
// para que los listados conserven el orden del fixture.
type Dataset struct {
	Users        []entity.User
	Customers    []entity.Customer
	Offerings    []entity.Offering
	Appointments []entity.Appointment
}
