package session

import (
	"context"
	"time"

	"ai-support-be/internal/apperror"
	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"
	"ai-support-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles session ownership checks and mutations.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// VerifyChatSession loads the session and validates ownership. A missing
// session and a foreign session are distinct failures: the first is a
// 404, the second a 403, so callers can tell the client which happened.
func (m *Manager) VerifyChatSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("Chat session not found")
	}
	if session.UserId != userId {
		return nil, apperror.Forbidden("Chat session belongs to another user")
	}
	return session, nil
}

// UpdateTitle persists a new session title.
func (m *Manager) UpdateTitle(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession, title string, now time.Time) error {
	session.Title = &title
	session.UpdatedAt = &now
	return uow.ChatSessionRepository().Update(ctx, session)
}
