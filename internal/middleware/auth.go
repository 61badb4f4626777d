package middleware

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/scope"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// TokenProtected resolves the raw Authorization header to a user and stores
// it for the handlers. It runs before any request body is read.
func TokenProtected(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := users.Authenticate(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Errors: "Unauthorized",
				})
			}
			return err
		}

		scope.SetUser(c, user)
		return c.Next()
	}
}
