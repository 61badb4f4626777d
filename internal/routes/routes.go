package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	userService *services.UserService,
	userHandler *handlers.UserHandler,
	contactHandler *handlers.ContactHandler,
	addressHandler *handlers.AddressHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// Per-IP rate limit; RATE_LIMIT_MAX=0 disables it
	if cfg.RateLimitMax > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:               cfg.RateLimitMax,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		}))
	}

	api.Get("/health", healthHandler.Check)

	// Public user routes
	api.Post("/users", userHandler.Register)
	api.Post("/users/login", userHandler.Login)

	// Token-protected user routes. The middleware is attached per route so
	// registration and login stay public.
	auth := middleware.TokenProtected(userService)
	api.Get("/users/current", auth, userHandler.Current)
	api.Patch("/users/current", auth, userHandler.UpdateCurrent)
	api.Delete("/users/logout", auth, userHandler.Logout)

	contacts := api.Group("/contacts", auth)
	contacts.Post("/", contactHandler.Create)
	contacts.Get("/", contactHandler.Search)
	contacts.Get("/:contactId", contactHandler.Get)
	contacts.Put("/:contactId", contactHandler.Update)
	contacts.Delete("/:contactId", contactHandler.Delete)

	contacts.Post("/:contactId/addresses", addressHandler.Create)
	contacts.Get("/:contactId/addresses", addressHandler.List)
	contacts.Get("/:contactId/addresses/:addressId", addressHandler.Get)
	contacts.Put("/:contactId/addresses/:addressId", addressHandler.Update)
	contacts.Delete("/:contactId/addresses/:addressId", addressHandler.Delete)

	admin := api.Group("/admin", middleware.AdminRequired(cfg))
	admin.Delete("/users/:username", userHandler.Delete)
}
