package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LoanApplication struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	LoanType         string    `gorm:"size:50" json:"loan_type"`
	Amount           float64   `gorm:"not null" json:"amount"`
	Purpose          string    `gorm:"type:text" json:"purpose"`
	Status           string    `gorm:"size:20;default:'pending'" json:"status"`
	EligibilityScore float64   `json:"eligibility_score"`
	Recommendations  string    `gorm:"type:text" json:"recommendations"`
	CreatedAt        time.Time `json:"created_at"`
}

type InvestmentAnalysis struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	PortfolioName   string            `gorm:"size:255" json:"portfolio_name"`
	Allocation      datatypes.JSONMap `json:"allocation"`
	RiskLevel       string            `gorm:"size:20" json:"risk_level"`
	Recommendations string            `gorm:"type:text" json:"recommendations"`
	CreatedAt       time.Time         `json:"created_at"`
}
