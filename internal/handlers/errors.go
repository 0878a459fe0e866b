package handlers

import (
	"errors"
	"log/slog"

	"github.com/finmitra/backend/internal/ai"
	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/identity"
	"github.com/finmitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// fail maps service errors to boundary responses: validation 400,
// invalid identity session 400, unsupported filing status 422, provider
// failures 502, everything else a generic 500. Detail stays server-side.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, identity.ErrInvalidSession):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid session",
		})
	case errors.Is(err, services.ErrUnsupportedFilingStatus):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, ai.ErrProvider):
		slog.Error("llm provider failure", "path", c.Path(), "error", err.Error())
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Advisory service unavailable",
		})
	default:
		slog.Error("request failed", "path", c.Path(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Not authenticated",
	})
}
