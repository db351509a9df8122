package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carshop-api/internal/application/usecase"
	"github.com/jhoicas/carshop-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProfileUC     *usecase.ProfileUseCase
	OfferingUC    *usecase.OfferingUseCase
	CarUC         *usecase.CarUseCase
	AppointmentUC *usecase.AppointmentUseCase
	Resolver      IdentityResolver
}

// Router registra las rutas de la API. Toda la superficie /api pasa por el
// Access Gate; solo /api/profile exige además el rol CUSTOMER.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.Resolver))

	profileHandler := NewProfileHandler(deps.ProfileUC)
	carHandler := NewCarHandler(deps.CarUC)

	profile := api.Group("/profile")
	profile.Get("/", RequireRole(entity.RoleCustomer), profileHandler.GetProfile)
	profile.Get("/appointments", profileHandler.ListAppointments)
	// Registro de carros abierto a cualquier identidad conocida: el mock
	// original no exige rol CUSTOMER aquí y la asimetría se conserva.
	profile.Post("/cars", carHandler.Register)

	offeringHandler := NewOfferingHandler(deps.OfferingUC)
	api.Get("/offerings", offeringHandler.List)

	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	api.Post("/appointments", appointmentHandler.Book)
}
