package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finmitra/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return NewClient(&config.Config{
		LLMAPIURL: url,
		LLMAPIKey: "test-key",
		LLMModel:  "gpt-4o-mini",
		AITimeout: 5 * time.Second,
	})
}

func TestSend(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "generated advice"}},
			},
		})
	}))
	defer server.Close()

	reply, err := testClient(server.URL).Send("system instruction", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, "generated advice", reply)

	assert.Equal(t, "gpt-4o-mini", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "system instruction", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "user prompt", captured.Messages[1].Content)
}

func TestSendProviderStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Send("s", "p")
	assert.ErrorIs(t, err, ErrProvider)
}

func TestSendEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Send("s", "p")
	assert.ErrorIs(t, err, ErrProvider)
}

func TestSendUnreachableProvider(t *testing.T) {
	_, err := testClient("http://127.0.0.1:1").Send("s", "p")
	assert.ErrorIs(t, err, ErrProvider)
}
