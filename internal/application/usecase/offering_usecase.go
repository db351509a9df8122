package usecase

import (
	"github.com/jhoicas/carshop-api/internal/domain/entity"
	"github.com/jhoicas/carshop-api/internal/domain/repository"
)

// OfferingUseCase casos de uso del catálogo de servicios.
type OfferingUseCase struct {
	offerings repository.OfferingRepository
}

// NewOfferingUseCase construye el caso de uso.
func NewOfferingUseCase(offerings repository.OfferingRepository) *OfferingUseCase {
	return &OfferingUseCase{offerings: offerings}
}

// List devuelve el catálogo completo en el orden del fixture, sin paginación:
// cualquier identidad autenticada puede consultarlo.
func (uc *OfferingUseCase) List() ([]entity.Offering, error) {
	return uc.offerings.List()
}
