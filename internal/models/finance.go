package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"index" json:"date"`
	Type        string    `gorm:"size:20;not null" json:"type"` // income | expense
	CreatedAt   time.Time `json:"created_at"`
}

type Bill struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Amount       float64   `gorm:"not null" json:"amount"`
	DueDate      string    `gorm:"size:30" json:"due_date"`
	Recurring    bool      `gorm:"default:true" json:"recurring"`
	Status       string    `gorm:"size:20;default:'pending'" json:"status"` // pending | paid
	ReminderDays int       `gorm:"default:3" json:"reminder_days"`
	CreatedAt    time.Time `json:"created_at"`
}

// Budget tracks spend per category; Spent is incremented in place when an
// expense transaction with a matching category is recorded.
type Budget struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Category  string    `gorm:"size:100;not null" json:"category"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Spent     float64   `gorm:"default:0" json:"spent"`
	CreatedAt time.Time `json:"created_at"`
}

type FinancialGoal struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	TargetAmount  float64   `gorm:"not null" json:"target_amount"`
	CurrentAmount float64   `gorm:"default:0" json:"current_amount"`
	Deadline      string    `gorm:"size:30" json:"deadline"`
	Priority      string    `gorm:"size:20" json:"priority"` // low | medium | high
	CreatedAt     time.Time `json:"created_at"`
}
