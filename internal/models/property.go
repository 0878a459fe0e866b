package models

import (
	"time"

	"github.com/google/uuid"
)

type PropertySearch struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PropertyAddress string    `gorm:"type:text;not null" json:"property_address"`
	PropertyType    string    `gorm:"size:50" json:"property_type"`
	SearchType      string    `gorm:"size:50" json:"search_type"` // legal_verification | ownership | encumbrance
	Status          string    `gorm:"size:20;default:'pending'" json:"status"`
	Results         string    `gorm:"type:text" json:"results"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}

type PropertyValuation struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	PropertyAddress  string    `gorm:"type:text;not null" json:"property_address"`
	PropertyType     string    `gorm:"size:50" json:"property_type"`
	AreaSqft         float64   `json:"area_sqft"`
	Location         string    `gorm:"size:255" json:"location"`
	EstimatedValue   float64   `json:"estimated_value"`
	ValuationDetails string    `gorm:"type:text" json:"valuation_details"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
}
