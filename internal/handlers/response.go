package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/scope"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/services"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/validation"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

const deletedMarker = "OK"

func success(c *fiber.Ctx, data any) error {
	return c.JSON(dto.DataResponse{Data: data})
}

func fail(c *fiber.Ctx, status int, errs any) error {
	return c.Status(status).JSON(dto.ErrorResponse{Errors: errs})
}

// respond maps domain errors onto the error envelope. Anything it does not
// recognise is returned to Fiber's ErrorHandler as an internal error.
func respond(c *fiber.Ctx, err error) error {
	var verrs *validation.Errors
	switch {
	case errors.As(err, &verrs):
		return fail(c, fiber.StatusBadRequest, verrs.Messages)
	case errors.Is(err, services.ErrUsernameTaken):
		return fail(c, fiber.StatusBadRequest, "Username already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, "Username or password wrong")
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, scope.ErrNoUser):
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, services.ErrContactNotFound):
		return fail(c, fiber.StatusNotFound, "Contact is not found")
	case errors.Is(err, services.ErrAddressNotFound):
		return fail(c, fiber.StatusNotFound, "Address is not found")
	case errors.Is(err, services.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "User is not found")
	default:
		return err
	}
}

func invalidBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "Invalid request body")
}

// ErrorHandler is the Fiber ErrorHandler. Client errors keep their message;
// server errors are logged, reported to Sentry, and answered generically.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= 500 {
		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		}
		if rid, ok := c.Locals("requestid").(string); ok {
			attrs = append(attrs, "request_id", rid)
		}
		if user, uerr := scope.CurrentUser(c); uerr == nil {
			attrs = append(attrs, "username", user.Username)
		}
		slog.Error("unhandled server error", attrs...)

		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		message = "Internal server error"
	}

	return fail(c, code, message)
}
