package memory

import (
	"github.com/jhoicas/carshop-api/internal/domain"
	"github.com/jhoicas/carshop-api/internal/domain/entity"
)

// UserRepository resuelve identidades por email sobre el Dataset.
type UserRepository struct {
	ds *Dataset
}

// NewUserRepository construye el repositorio.
func NewUserRepository(ds *Dataset) *UserRepository {
	return &UserRepository{ds: ds}
}

// GetByEmail busca el usuario con ese email. Devuelve domain.ErrNotFound si no existe.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	for i := range r.ds.Users {
		if r.ds.Users[i].Email == email {
			u := r.ds.Users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}
