package server

import (
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/routes"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/services"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// New wires services, handlers, and middleware into a ready Fiber app.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	userService := services.NewUserService(db, cfg)
	contactService := services.NewContactService(db, cfg)
	addressService := services.NewAddressService(db, contactService)

	userHandler := handlers.NewUserHandler(userService)
	contactHandler := handlers.NewContactHandler(contactService)
	addressHandler := handlers.NewAddressHandler(addressService)
	healthHandler := handlers.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		BodyLimit:             1 * 1024 * 1024,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, userService, userHandler, contactHandler, addressHandler, healthHandler)

	return app
}
