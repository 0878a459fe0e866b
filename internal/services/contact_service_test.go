package services

import (
	"testing"

	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmit(t *testing.T) {
	db := openTestDB(t, &models.ContactSubmission{})
	svc := NewContactService(db)

	err := svc.Submit(dto.ContactRequest{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "+91 98765 43210",
		Message: "Please call me about home loans.",
	})
	require.NoError(t, err)

	var submission models.ContactSubmission
	require.NoError(t, db.First(&submission).Error)
	assert.Equal(t, "asha@example.com", submission.Email)
}

func TestContactSubmitValidation(t *testing.T) {
	db := openTestDB(t, &models.ContactSubmission{})
	svc := NewContactService(db)

	assert.ErrorIs(t, svc.Submit(dto.ContactRequest{Email: "a@b.c", Message: "m"}), ErrValidation)
	assert.ErrorIs(t, svc.Submit(dto.ContactRequest{Name: "n", Message: "m"}), ErrValidation)
	assert.ErrorIs(t, svc.Submit(dto.ContactRequest{Name: "n", Email: "a@b.c"}), ErrValidation)
}
