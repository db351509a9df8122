package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/carshop-api/internal/application/dto"
	"github.com/jhoicas/carshop-api/internal/domain"
	"github.com/jhoicas/carshop-api/internal/domain/entity"
	"github.com/jhoicas/carshop-api/internal/domain/repository"
	"github.com/jhoicas/carshop-api/internal/domain/validation"
)

// Año mínimo aceptado para un carro registrable.
const minCarYear = 1980

// CarUseCase caso de uso de registro de carros.
type CarUseCase struct {
	cars repository.CarRepository
}

// NewCarUseCase construye el caso de uso.
func NewCarUseCase(cars repository.CarRepository) *CarUseCase {
	return &CarUseCase{cars: cars}
}

// Register valida el payload y sintetiza un carro nuevo con id fresco y
// CarType nulo (sin clasificar). Todas las reglas se evalúan; si alguna falla
// devuelve *domain.ValidationError con una entrada por regla violada.
// El carro aceptado se entrega al sumidero: se responde, no se almacena.
func (uc *CarUseCase) Register(in dto.RegisterCarRequest) (*entity.Car, error) {
	maxYear := time.Now().Year() + 1
	errs := validation.Run([]validation.Rule{
		validation.Required("make", in.Make),
		validation.Required("model", in.Model),
		validation.YearBetween("year", in.Year, minCarYear, maxYear),
		validation.Required("color", in.Color),
		validation.Required("licensePlate", in.LicensePlate),
	})
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	car := &entity.Car{
		ID:           uuid.New().String(),
		Make:         in.Make,
		Model:        in.Model,
		Year:         in.Year,
		Color:        in.Color,
		LicensePlate: in.LicensePlate,
		CarType:      nil,
	}
	if err := uc.cars.Save(car); err != nil {
		return nil, err
	}
	return car, nil
}
