package memory

import "github.com/jhoicas/carshop-api/internal/domain/entity"

// OfferingRepository lee los servicios contratables del Dataset.
type OfferingRepository struct {
	ds *Dataset
}

// NewOfferingRepository construye el repositorio.
func NewOfferingRepository(ds *Dataset) *OfferingRepository {
	return &OfferingRepository{ds: ds}
}

// List devuelve una copia del slice de offerings en el orden del fixture.
func (r *OfferingRepository) List() ([]entity.Offering, error) {
	out := make([]entity.Offering, len(r.ds.Offerings))
	copy(out, r.ds.Offerings)
	return out, nil
}
