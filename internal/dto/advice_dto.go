package dto

import "time"

type AdviceRequest struct {
	Query          string                 `json:"query"`
	ConversationID string                 `json:"conversation_id,omitempty"`
	Context        map[string]interface{} `json:"context,omitempty"`
}

type AdviceResponse struct {
	ConversationID string `json:"conversation_id"`
	Advice         string `json:"advice"`
}

// ConversationSummary is one entry in the conversation list: the latest
// message (truncated) and when it was written.
type ConversationSummary struct {
	ConversationID string    `json:"conversation_id"`
	LastMessage    string    `json:"last_message"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ClearConversationResponse struct {
	ConversationID string `json:"conversation_id"`
	Deleted        int64  `json:"deleted"`
}
