package memory

import (
	"github.com/jhoicas/carshop-api/internal/domain"
	"github.com/jhoicas/carshop-api/internal/domain/entity"
)

// CustomerRepository lee perfiles de cliente del Dataset.
type CustomerRepository struct {
	ds *Dataset
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(ds *Dataset) *CustomerRepository {
	return &CustomerRepository{ds: ds}
}

// GetByID busca el perfil. Devuelve domain.ErrNotFound si no existe, incluso
// cuando el ProfileID viene de un User válido (fixture roto ≠ crash).
func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	for i := range r.ds.Customers {
		if r.ds.Customers[i].ID == id {
			c := r.ds.Customers[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}
