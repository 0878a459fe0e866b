package handlers

import (
	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/middleware"
	"github.com/finmitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PropertyHandler struct {
	property *services.PropertyService
}

func NewPropertyHandler(property *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{property: property}
}

func (h *PropertyHandler) LegalSearch(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.PropertySearchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.property.LegalSearch(user.ID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}

func (h *PropertyHandler) Valuation(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.PropertyValuationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.property.Valuation(user.ID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}

func (h *PropertyHandler) Searches(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	searches, err := h.property.Searches(user.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(searches)
}

func (h *PropertyHandler) Valuations(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	valuations, err := h.property.Valuations(user.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(valuations)
}
