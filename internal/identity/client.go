package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/finmitra/backend/internal/config"
	"github.com/go-resty/resty/v2"
)

// ErrInvalidSession means the provider rejected the opaque session id.
var ErrInvalidSession = errors.New("invalid session")

// SessionData is what the provider returns for a valid session id.
type SessionData struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// Exchanger swaps an opaque session id for a user profile and a session
// token.
type Exchanger interface {
	Exchange(sessionID string) (*SessionData, error)
}

type Client struct {
	client *resty.Client
	url    string
}

func NewClient(cfg *config.Config) *Client {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	return &Client{
		client: client,
		url:    cfg.IdentityURL,
	}
}

func (c *Client) Exchange(sessionID string) (*SessionData, error) {
	var data SessionData

	resp, err := c.client.R().
		SetHeader("X-Session-ID", sessionID).
		SetResult(&data).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("identity provider request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, ErrInvalidSession
	}

	return &data, nil
}
