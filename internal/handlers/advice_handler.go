package handlers

import (
	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/middleware"
	"github.com/finmitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdviceHandler struct {
	advisor *services.AdvisorService
}

func NewAdviceHandler(advisor *services.AdvisorService) *AdviceHandler {
	return &AdviceHandler{advisor: advisor}
}

func (h *AdviceHandler) Advise(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AdviceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.advisor.Advise(user.ID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(resp)
}

func (h *AdviceHandler) ListConversations(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	summaries, err := h.advisor.ListConversations(user.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(summaries)
}

func (h *AdviceHandler) ClearConversation(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	conversationID := c.Params("id")
	if conversationID == "" {
		return badRequest(c, "Conversation id is required")
	}

	deleted, err := h.advisor.ClearConversation(user.ID, conversationID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.ClearConversationResponse{
		ConversationID: conversationID,
		Deleted:        deleted,
	})
}
