package contract

import (
	"context"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatFeedbackRepository interface {
	// Upsert inserts the feedback or, when a row for the same
	// (message, user) pair exists, overwrites its rating and comment.
	Upsert(ctx context.Context, feedback *entity.ChatFeedback) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatFeedback, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatFeedback, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindRecent returns the newest feedback first, joined with the
	// rating author and target message for the dashboard feed.
	FindRecent(ctx context.Context, limit, offset int) ([]*entity.FeedbackFeedItem, error)
	DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error
}
