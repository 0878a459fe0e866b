package models

import (
	"time"

	"github.com/google/uuid"
)

// ConversationMessage is one turn in an advisory conversation. The log is
// append-only; ordering by created_at defines conversation order.
type ConversationMessage struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID string    `gorm:"size:36;not null;index:idx_conv_user" json:"conversation_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_conv_user" json:"user_id"`
	Role           string    `gorm:"size:20;not null" json:"role"` // user | assistant
	Message        string    `gorm:"type:text;not null" json:"message"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

// Consultation is the summary row written after each successful advisory
// call, alongside the two conversation turns.
type Consultation struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ConversationID   string    `gorm:"size:36;index" json:"conversation_id"`
	ConsultationType string    `gorm:"size:50" json:"consultation_type"`
	Query            string    `gorm:"type:text" json:"query"`
	AIResponse       string    `gorm:"type:text" json:"ai_response"`
	CreatedAt        time.Time `json:"created_at"`
}
