package models

import (
	"time"

	"github.com/google/uuid"
)

// User is created on the first successful identity-provider exchange and
// never deleted by this service. Email is the upsert key.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Picture   string    `gorm:"type:text" json:"picture"`
	CreatedAt time.Time `json:"created_at"`
}

// Session maps an opaque bearer token to a user for a bounded window.
// A session is valid iff expires_at is strictly in the future; expired
// rows are left in place and ignored (no background sweep).
type Session struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SessionToken string    `gorm:"not null;size:512;uniqueIndex" json:"-"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
