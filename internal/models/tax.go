package models

import (
	"time"

	"github.com/google/uuid"
)

type TaxCalculation struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TaxYear          int       `json:"tax_year"`
	Income           float64   `json:"income"`
	Deductions       float64   `json:"deductions"`
	TaxOwed          float64   `json:"tax_owed"`
	OptimizationTips string    `gorm:"type:text" json:"optimization_tips"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
}
