package handlers

import (
	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contact *services.ContactService
}

func NewContactHandler(contact *services.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit accepts contact-form submissions without authentication.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.contact.Submit(req); err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.ContactResponse{
		Success: true,
		Message: "Thank you! We will contact you soon.",
	})
}
