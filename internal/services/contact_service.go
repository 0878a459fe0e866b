package services

import (
	"fmt"

	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

func (s *ContactService) Submit(req dto.ContactRequest) error {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return fmt.Errorf("%w: name, email and message are required", ErrValidation)
	}

	submission := models.ContactSubmission{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	return s.db.Create(&submission).Error
}
