package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carshop-api/internal/domain/entity"
)

func carType(t entity.CarType) *entity.CarType { return &t }

func prices(sedan, hatchback, suv int64) map[entity.CarType]decimal.Decimal {
	return map[entity.CarType]decimal.Decimal{
		entity.CarTypeSedan:     decimal.NewFromInt(sedan),
		entity.CarTypeHatchback: decimal.NewFromInt(hatchback),
		entity.CarTypeSUV:       decimal.NewFromInt(suv),
	}
}

// DefaultDataset devuelve los datos de demostración del taller. Todo usuario
// con rol CUSTOMER apunta a un Customer existente, salvo ghost@carshop.com,
// que ejercita deliberadamente el caso de perfil ausente (404, nunca pánico).
func DefaultDataset() *Dataset {
	cars := []entity.Car{
		{
			ID:           "car-1",
			Make:         "Honda",
			Model:        "City",
			Year:         2019,
			Color:        "White",
			LicensePlate: "MH12DE1433",
			CarType:      carType(entity.CarTypeSedan),
		},
		{
			ID:           "car-2",
			Make:         "Hyundai",
			Model:        "Creta",
			Year:         2022,
			Color:        "Black",
			LicensePlate: "MH14FG2210",
			CarType:      carType(entity.CarTypeSUV),
		},
	}

	customers := []entity.Customer{
		{
			ID:      "cust-1",
			Name:    "Rohit Sharma",
			Email:   "customer@carshop.com",
			Phone:   "+91 98200 11223",
			Address: "14 MG Road, Pune",
			Cars:    cars,
		},
	}

	offerings := []entity.Offering{
		{
			ID:           "offering-1",
			Name:         "Premium Wash",
			Description:  "Exterior foam wash, interior vacuum and dashboard polish",
			DurationMins: 45,
			Prices:       prices(500, 450, 650),
		},
		{
			ID:           "offering-2",
			Name:         "Engine Oil Change",
			Description:  "Synthetic oil replacement with filter check",
			DurationMins: 60,
			Prices:       prices(2200, 2000, 2600),
		},
		{
			ID:           "offering-3",
			Name:         "Full Service",
			Description:  "Complete inspection, fluids, brakes and wheel alignment",
			DurationMins: 180,
			Prices:       prices(5500, 5000, 6500),
		},
	}

	appointments := []entity.Appointment{
		{
			ID:            "apt-1",
			ScheduledTime: time.Date(2025, time.November, 12, 9, 0, 0, 0, time.Local),
			Status:        entity.AppointmentScheduled,
			TotalCost:     offerings[1].Prices[entity.CarTypeSedan],
			Customer:      customers[0],
			Car:           cars[0],
			Offering:      offerings[1],
		},
		{
			ID:            "apt-2",
			ScheduledTime: time.Date(2025, time.October, 3, 15, 30, 0, 0, time.Local),
			Status:        entity.AppointmentCompleted,
			TotalCost:     offerings[0].Prices[entity.CarTypeSUV],
			Customer:      customers[0],
			Car:           cars[1],
			Offering:      offerings[0],
		},
	}

	return &Dataset{
		Users: []entity.User{
			{ID: "user-1", Name: "Rohit Sharma", Email: "customer@carshop.com", Role: entity.RoleCustomer, ProfileID: "cust-1"},
			{ID: "user-2", Name: "Anita Desai", Email: "employee@carshop.com", Role: entity.RoleEmployee, ProfileID: "emp-1"},
			{ID: "user-3", Name: "Vikram Mehta", Email: "owner@carshop.com", Role: entity.RoleOwner, ProfileID: "own-1"},
			{ID: "user-4", Name: "Ghost Customer", Email: "ghost@carshop.com", Role: entity.RoleCustomer, ProfileID: "cust-404"},
		},
		Customers:    customers,
		Offerings:    offerings,
		Appointments: appointments,
	}
}
