package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Message   string    `json:"message" validate:"required,max=1000"`
}

type SendChatResponse struct {
	Reply        string    `json:"reply"`
	AiMessageId  uuid.UUID `json:"ai_message_id"`
	SessionTitle *string   `json:"session_title"`
}

// HistoryMessageDTO is one turn of the history view. FeedbackGiven holds
// the requesting user's own rating for AI turns, never other raters'.
type HistoryMessageDTO struct {
	DbId          uuid.UUID `json:"db_id"`
	Sender        string    `json:"sender"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"created_at"`
	FeedbackGiven *string   `json:"feedbackGiven"`
}

type GetHistoryResponse struct {
	Messages []*HistoryMessageDTO `json:"messages"`
}
