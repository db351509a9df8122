package repository

import "github.com/jhoicas/carshop-api/internal/domain/entity"

// CarRepository define el puerto de escritura para carros registrados.
//
// En este backend de demostración el contrato es "aceptado pero no almacenado":
// la implementación es un sumidero que descarta el carro. El puerto existe para
// que esa asimetría sea explícita y verificable, no un accidente.
type CarRepository interface {
	Save(car *entity.Car) error
}
