package memory

import (
	"sync/atomic"

	"github.com/jhoicas/carshop-api/internal/domain/entity"
)

// CarSink implementa repository.CarRepository descartando el carro: el endpoint
// de registro responde 201 pero el Dataset nunca cambia. El contador de
// llamadas es atómico: el mismo sumidero atiende peticiones concurrentes y es
// el único estado mutable compartido del proceso.
type CarSink struct {
	saved atomic.Int64
}

// NewCarSink construye el sumidero.
func NewCarSink() *CarSink {
	return &CarSink{}
}

// Save acepta el carro y lo descarta.
func (s *CarSink) Save(_ *entity.Car) error {
	s.saved.Add(1)
	return nil
}

// Saved devuelve cuántos carros se aceptaron, para que los tests puedan
// afirmar que el contrato "aceptado pero no almacenado" se cumplió.
func (s *CarSink) Saved() int64 {
	return s.saved.Load()
}
