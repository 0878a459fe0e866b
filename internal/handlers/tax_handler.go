package handlers

import (
	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/middleware"
	"github.com/finmitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type TaxHandler struct {
	tax *services.TaxService
}

func NewTaxHandler(tax *services.TaxService) *TaxHandler {
	return &TaxHandler{tax: tax}
}

func (h *TaxHandler) Calculate(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.TaxRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.tax.Calculate(user.ID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}

func (h *TaxHandler) History(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	calculations, err := h.tax.History(user.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(calculations)
}
