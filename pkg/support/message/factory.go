package message

import (
	"time"

	"ai-support-be/internal/constant"
	"ai-support-be/internal/entity"
	"ai-support-be/pkg/llm"

	"github.com/google/uuid"
)

// Factory builds conversation turns. Every send produces exactly one
// user turn and one AI turn, even when the provider call fails.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// CreateUserTurn builds the persisted user message for a send.
func (f *Factory) CreateUserTurn(sessionId uuid.UUID, text string, now time.Time) *entity.ChatMessage {
	return &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Sender:        constant.ChatSenderUser,
		Message:       text,
		CreatedAt:     now,
	}
}

// CreateAiTurn builds the persisted AI reply for a send.
func (f *Factory) CreateAiTurn(sessionId uuid.UUID, text string, now time.Time) *entity.ChatMessage {
	return &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Sender:        constant.ChatSenderAi,
		Message:       text,
		CreatedAt:     now,
	}
}

// CreateFallbackTurn builds the sentinel AI turn stored when the
// provider call fails.
func (f *Factory) CreateFallbackTurn(sessionId uuid.UUID, now time.Time) *entity.ChatMessage {
	return f.CreateAiTurn(sessionId, constant.ChatErrorFallbackMessage, now)
}

// BuildPrompt shapes one exchange for the provider. Each dispatch sends
// only the system prompt and the current user text; prior turns are
// persisted for display but never replayed to the model.
func (f *Factory) BuildPrompt(systemPrompt, userText string) []llm.Message {
	prompt := make([]llm.Message, 0, 2)
	if systemPrompt != "" {
		prompt = append(prompt, llm.Message{Role: "system", Content: systemPrompt})
	}
	prompt = append(prompt, llm.Message{Role: "user", Content: userText})
	return prompt
}
