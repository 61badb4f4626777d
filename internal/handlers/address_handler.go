package handlers

import (
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/models"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/scope"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/services"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (h *AddressHandler) Create(c *fiber.Ctx) error {
	user, err := scope.CurrentUser(c)
	if err != nil {
		return respond(c, err)
	}

	contactID, err := validation.PathID("contactId", c.Params("contactId"))
	if err != nil {
		return respond(c, err)
	}

	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	address, err := h.addressService.Create(user, contactID, &req)
	if err != nil {
		return respond(c, err)
	}
	return success(c, address)
}

func (h *AddressHandler) List(c *fiber.Ctx) error {
	user, err := scope.CurrentUser(c)
	if err != nil {
		return respond(c, err)
	}

	contactID, err := validation.PathID("contactId", c.Params("contactId"))
	if err != nil {
		return respond(c, err)
	}

	addresses, err := h.addressService.List(user, contactID)
	if err != nil {
		return respond(c, err)
	}
	return success(c, addresses)
}

func (h *AddressHandler) Get(c *fiber.Ctx) error {
	user, contactID, addressID, err := addressPath(c)
	if err != nil {
		return respond(c, err)
	}

	address, err := h.addressService.Get(user, contactID, addressID)
	if err != nil {
		return respond(c, err)
	}
	return success(c, address)
}

func (h *AddressHandler) Update(c *fiber.Ctx) error {
	user, contactID, addressID, err := addressPath(c)
	if err != nil {
		return respond(c, err)
	}

	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	address, err := h.addressService.Update(user, contactID, addressID, &req)
	if err != nil {
		return respond(c, err)
	}
	return success(c, address)
}

func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	user, contactID, addressID, err := addressPath(c)
	if err != nil {
		return respond(c, err)
	}

	if err := h.addressService.Delete(user, contactID, addressID); err != nil {
		return respond(c, err)
	}
	return success(c, deletedMarker)
}

func addressPath(c *fiber.Ctx) (*models.User, uint, uint, error) {
	user, err := scope.CurrentUser(c)
	if err != nil {
		return nil, 0, 0, err
	}
	contactID, err := validation.PathID("contactId", c.Params("contactId"))
	if err != nil {
		return nil, 0, 0, err
	}
	addressID, err := validation.PathID("addressId", c.Params("addressId"))
	if err != nil {
		return nil, 0, 0, err
	}
	return user, contactID, addressID, nil
}
