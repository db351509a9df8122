package repository

import "github.com/jhoicas/carshop-api/internal/domain/entity"

// OfferingRepository define el puerto de lectura de servicios contratables.
// La regla de conflicto de horario no necesita buscar por id: va fijada al
// offering-1 del fixture, así que el puerto solo expone el listado.
type OfferingRepository interface {
	// List devuelve todos los offerings en el orden del fixture.
	List() ([]entity.Offering, error)
}
