package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/carshop-api/internal/application/usecase"
	"github.com/jhoicas/carshop-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/carshop-api/internal/interfaces/http"
	"github.com/jhoicas/carshop-api/pkg/config"
	"github.com/jhoicas/carshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("auth_mode", cfg.Auth.Mode).
		Msg("iniciando aplicación")

	// Fixtures inmutables del proceso: todos los repositorios leen el mismo
	// Dataset y ningún endpoint lo escribe.
	ds := memory.DefaultDataset()
	userRepo := memory.NewUserRepository(ds)
	customerRepo := memory.NewCustomerRepository(ds)
	offeringRepo := memory.NewOfferingRepository(ds)
	appointmentRepo := memory.NewAppointmentRepository(ds)
	carSink := memory.NewCarSink()

	profileUC := usecase.NewProfileUseCase(customerRepo, appointmentRepo)
	offeringUC := usecase.NewOfferingUseCase(offeringRepo)
	carUC := usecase.NewCarUseCase(carSink)
	appointmentUC := usecase.NewAppointmentUseCase()

	var resolver httpRouter.IdentityResolver
	if cfg.Auth.Mode == "token" {
		resolver = httpRouter.NewTokenResolver(userRepo, cfg.JWT.Secret)
	} else {
		resolver = httpRouter.NewHeaderResolver(userRepo, cfg.Auth.Header)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Un solo origen permitido, con credenciales.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigin,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, x-user-email",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CarShop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProfileUC:     profileUC,
		OfferingUC:    offeringUC,
		CarUC:         carUC,
		AppointmentUC: appointmentUC,
		Resolver:      resolver,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
