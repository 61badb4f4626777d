package scope

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

const userKey = "user"

var ErrNoUser = errors.New("no authenticated user in context")

// SetUser stores the authenticated user in Fiber context locals.
func SetUser(c *fiber.Ctx, user *models.User) {
	c.Locals(userKey, user)
}

// CurrentUser returns the user stored by the auth middleware.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(userKey).(*models.User)
	if !ok || user == nil {
		return nil, ErrNoUser
	}
	return user, nil
}
