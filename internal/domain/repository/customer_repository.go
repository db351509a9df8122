package repository

import "github.com/jhoicas/carshop-api/internal/domain/entity"

// CustomerRepository define el puerto de lectura de perfiles de cliente.
type CustomerRepository interface {
	GetByID(id string) (*entity.Customer, error)
}
