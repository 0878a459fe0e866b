package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/finmitra/backend/internal/config"
	"github.com/finmitra/backend/internal/identity"
	"github.com/finmitra/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	db       *gorm.DB
	cfg      *config.Config
	identity identity.Exchanger
}

func NewAuthService(db *gorm.DB, cfg *config.Config, exchanger identity.Exchanger) *AuthService {
	return &AuthService{db: db, cfg: cfg, identity: exchanger}
}

// CreateSession exchanges the opaque session id with the identity
// provider, upserts the user by email and stores exactly one new session
// row. The raw token is returned for the cookie.
func (s *AuthService) CreateSession(sessionID string) (*models.User, string, error) {
	if sessionID == "" {
		return nil, "", fmt.Errorf("%w: session_id is required", ErrValidation)
	}

	data, err := s.identity.Exchange(sessionID)
	if err != nil {
		return nil, "", err
	}

	var user models.User
	err = s.db.Where("email = ?", data.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:      uuid.New(),
			Email:   data.Email,
			Name:    data.Name,
			Picture: data.Picture,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, "", fmt.Errorf("failed to create user: %w", err)
		}
	} else if err != nil {
		return nil, "", err
	}

	session := models.Session{
		ID:           uuid.New(),
		UserID:       user.ID,
		SessionToken: data.SessionToken,
		ExpiresAt:    time.Now().UTC().Add(s.cfg.SessionTTL),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	return &user, data.SessionToken, nil
}

// Resolve maps a transport credential to zero-or-one user. A missing,
// expired or orphaned session is absence, not an error; only store
// failures come back as errors.
func (s *AuthService) Resolve(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	var session models.Session
	err := s.db.Where("session_token = ? AND expires_at > ?", token, time.Now().UTC()).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	err = s.db.First(&user, "id = ?", session.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout deletes the session row for the token. Deleting a token that
// does not exist is not an error.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.db.Where("session_token = ?", token).Delete(&models.Session{}).Error
}
