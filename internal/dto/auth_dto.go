package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	SessionID string `json:"session_id"`
}

// UserResponse is the public profile; storage internals never leave the
// service.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
