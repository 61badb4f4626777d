package handlers

import (
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/scope"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.userService.Register(&req)
	if err != nil {
		return respond(c, err)
	}
	return success(c, resp)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.userService.Login(&req)
	if err != nil {
		return respond(c, err)
	}
	return success(c, resp)
}

func (h *UserHandler) Current(c *fiber.Ctx) error {
	user, err := scope.CurrentUser(c)
	if err != nil {
		return respond(c, err)
	}
	return success(c, h.userService.GetCurrent(user))
}

func (h *UserHandler) UpdateCurrent(c *fiber.Ctx) error {
	user, err := scope.CurrentUser(c)
	if err != nil {
		return respond(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.userService.UpdateCurrent(user, &req)
	if err != nil {
		return respond(c, err)
	}
	return success(c, resp)
}

func (h *UserHandler) Logout(c *fiber.Ctx) error {
	user, err := scope.CurrentUser(c)
	if err != nil {
		return respond(c, err)
	}

	if err := h.userService.Logout(user); err != nil {
		return respond(c, err)
	}
	return success(c, deletedMarker)
}

// Delete removes a user by username. Mounted on the admin group only.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.Params("username")); err != nil {
		return respond(c, err)
	}
	return success(c, deletedMarker)
}
