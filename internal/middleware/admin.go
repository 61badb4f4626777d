package middleware

import (
	"crypto/subtle"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired admits requests carrying X-Admin-Token equal to the
// configured ADMIN_TOKEN. With no token configured the admin routes are closed.
func AdminRequired(cfg *config.Config) fiber.Handler {
	expected := []byte(cfg.AdminToken)

	return func(c *fiber.Ctx) error {
		provided := []byte(c.Get("X-Admin-Token"))
		if len(expected) == 0 || subtle.ConstantTimeCompare(provided, expected) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Errors: "Admin access required",
			})
		}
		return c.Next()
	}
}
