package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/models"
	"github.com/finmitra/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "current_user"

// SessionToken reads the credential from the session_token cookie,
// falling back to an Authorization bearer header.
func SessionToken(c *fiber.Ctx) string {
	if token := c.Cookies("session_token"); token != "" {
		return token
	}

	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// RequireAuth resolves the request credential to a user before any
// handler work runs. Missing, expired and orphaned sessions all get the
// same bare 401; store failures are infrastructure errors, not auth
// decisions.
func RequireAuth(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := SessionToken(c)
		if token == "" {
			return unauthorized(c)
		}

		user, err := auth.Resolve(token)
		if err != nil {
			slog.Error("session resolution failed", "path", c.Path(), "error", err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
		if user == nil {
			return unauthorized(c)
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Not authenticated",
	})
}

// CurrentUser extracts the authenticated user placed by RequireAuth.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(currentUserKey).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}
