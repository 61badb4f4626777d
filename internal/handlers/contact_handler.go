package handlers

import (
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/scope"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/services"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	user, err := scope.CurrentUser(c)
	if err != nil {
		return respond(c, err)
	}

	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	contact, err := h.contactService.Create(user, &req)
	if err != nil {
		return respond(c, err)
	}
	return success(c, contact)
}

func (h *ContactHandler) Search(c *fiber.Ctx) error {
	user, err := scope.CurrentUser(c)
	if err != nil {
		return respond(c, err)
	}

	req := dto.SearchContactRequest{Page: 1}
	if err := c.QueryParser(&req); err != nil {
		return respond(c, validation.New("page must be a number"))
	}

	contacts, paging, err := h.contactService.Search(user, &req)
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(dto.PageResponse{Data: contacts, Paging: paging})
}

func (h *ContactHandler) Get(c *fiber.Ctx) error {
	user, err := scope.CurrentUser(c)
	if err != nil {
		return respond(c, err)
	}

	contactID, err := validation.PathID("contactId", c.Params("contactId"))
	if err != nil {
		return respond(c, err)
	}

	contact, err := h.contactService.Get(user, contactID)
	if err != nil {
		return respond(c, err)
	}
	return success(c, contact)
}

func (h *ContactHandler) Update(c *fiber.Ctx) error {
	user, err := scope.CurrentUser(c)
	if err != nil {
		return respond(c, err)
	}

	contactID, err := validation.PathID("contactId", c.Params("contactId"))
	if err != nil {
		return respond(c, err)
	}

	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	contact, err := h.contactService.Update(user, contactID, &req)
	if err != nil {
		return respond(c, err)
	}
	return success(c, contact)
}

func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	user, err := scope.CurrentUser(c)
	if err != nil {
		return respond(c, err)
	}

	contactID, err := validation.PathID("contactId", c.Params("contactId"))
	if err != nil {
		return respond(c, err)
	}

	if err := h.contactService.Delete(user, contactID); err != nil {
		return respond(c, err)
	}
	return success(c, deletedMarker)
}
