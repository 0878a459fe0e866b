package identity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finmitra/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sess-abc", r.Header.Get("X-Session-ID"))
		json.NewEncoder(w).Encode(SessionData{
			Email:        "asha@example.com",
			Name:         "Asha",
			SessionToken: "tok-1",
		})
	}))
	defer server.Close()

	client := NewClient(&config.Config{IdentityURL: server.URL})

	data, err := client.Exchange("sess-abc")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", data.Email)
	assert.Equal(t, "tok-1", data.SessionToken)
}

func TestExchangeRejectedSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown session", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(&config.Config{IdentityURL: server.URL})

	_, err := client.Exchange("bogus")
	assert.ErrorIs(t, err, ErrInvalidSession)
}
