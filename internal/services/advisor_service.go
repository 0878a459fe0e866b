package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/finmitra/backend/internal/ai"
	"github.com/finmitra/backend/internal/dto"
	"github.com/finmitra/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const advisorSystemPrompt = "You are FinMitra, a personal finance advisor for users in India. " +
	"You have deep knowledge of Indian banking, taxation, insurance and investment products. " +
	"Reply in the language the user writes in, and keep advice practical and actionable."

const (
	// historyLimit caps the prompt context window; older turns stay
	// stored but are dropped from the prompt.
	historyLimit = 10

	conversationListLimit = 20
	messagePreviewLen     = 100
)

type AdvisorService struct {
	db   *gorm.DB
	chat ai.Chat
}

func NewAdvisorService(db *gorm.DB, chat ai.Chat) *AdvisorService {
	return &AdvisorService{db: db, chat: chat}
}

// Advise runs one consultation turn: assemble history into a prompt, call
// the LLM once, then persist the user turn, the assistant turn and a
// consultation summary in that order. A provider failure persists
// nothing; a crash between the two message writes can leave an orphaned
// user turn, which is accepted.
func (s *AdvisorService) Advise(userID uuid.UUID, req dto.AdviceRequest) (*dto.AdviceResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("%w: query is required", ErrValidation)
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		// The orchestrator is the sole creator of conversation ids.
		conversationID = uuid.NewString()
	}

	history, err := s.recentMessages(conversationID, userID)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(history, req.Query, req.Context)

	answer, err := s.chat.Send(advisorSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	userTurn := models.ConversationMessage{
		ID:             uuid.New(),
		ConversationID: conversationID,
		UserID:         userID,
		Role:           "user",
		Message:        req.Query,
		CreatedAt:      now,
	}
	if err := s.db.Create(&userTurn).Error; err != nil {
		return nil, err
	}

	// Nudge the assistant timestamp so created_at ordering keeps the
	// pair in turn order even within one clock tick.
	assistantTurn := models.ConversationMessage{
		ID:             uuid.New(),
		ConversationID: conversationID,
		UserID:         userID,
		Role:           "assistant",
		Message:        answer,
		CreatedAt:      now.Add(time.Millisecond),
	}
	if err := s.db.Create(&assistantTurn).Error; err != nil {
		return nil, err
	}

	consultation := models.Consultation{
		ID:               uuid.New(),
		UserID:           userID,
		ConversationID:   conversationID,
		ConsultationType: "general_advice",
		Query:            req.Query,
		AIResponse:       answer,
		CreatedAt:        now,
	}
	if err := s.db.Create(&consultation).Error; err != nil {
		return nil, err
	}

	return &dto.AdviceResponse{
		ConversationID: conversationID,
		Advice:         answer,
	}, nil
}

// recentMessages returns up to the last historyLimit turns, oldest first.
func (s *AdvisorService) recentMessages(conversationID string, userID uuid.UUID) ([]models.ConversationMessage, error) {
	var messages []models.ConversationMessage
	err := s.db.
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func buildPrompt(history []models.ConversationMessage, query string, context map[string]interface{}) string {
	var b strings.Builder

	for _, m := range history {
		if m.Role == "assistant" {
			b.WriteString("You: ")
		} else {
			b.WriteString("User: ")
		}
		b.WriteString(m.Message)
		b.WriteString("\n")
	}

	if len(history) > 0 {
		b.WriteString("User: ")
	}
	b.WriteString(query)

	if len(context) > 0 {
		if ctxJSON, err := json.Marshal(context); err == nil {
			b.WriteString("\nUser Context: ")
			b.Write(ctxJSON)
		}
	}

	return b.String()
}

// ListConversations groups the user's messages by conversation and
// reports the latest message per conversation, newest first.
func (s *AdvisorService) ListConversations(userID uuid.UUID) ([]dto.ConversationSummary, error) {
	var messages []models.ConversationMessage
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ConversationSummary, 0, conversationListLimit)
	seen := make(map[string]bool)

	for _, m := range messages {
		if seen[m.ConversationID] {
			continue
		}
		seen[m.ConversationID] = true

		summaries = append(summaries, dto.ConversationSummary{
			ConversationID: m.ConversationID,
			LastMessage:    truncateMessage(m.Message, messagePreviewLen),
			UpdatedAt:      m.CreatedAt,
		})
		if len(summaries) >= conversationListLimit {
			break
		}
	}

	return summaries, nil
}

// ClearConversation deletes every message in the conversation owned by
// the user and reports how many were removed. An unknown or empty
// conversation clears zero rows and succeeds.
func (s *AdvisorService) ClearConversation(userID uuid.UUID, conversationID string) (int64, error) {
	result := s.db.
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Delete(&models.ConversationMessage{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func truncateMessage(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
