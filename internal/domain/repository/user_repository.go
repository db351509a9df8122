package repository

import "github.com/jhoicas/carshop-api/internal/domain/entity"

// UserRepository define el puerto de lectura de identidades. El email es la
// clave única con la que el Access Gate resuelve al usuario.
type UserRepository interface {
	GetByEmail(email string) (*entity.User, error)
}
