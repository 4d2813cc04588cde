package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatFeedback is one user's rating of one AI message. At most one row
// exists per (message, user); repeat submissions overwrite it.
type ChatFeedback struct {
	Id            uuid.UUID
	ChatMessageId uuid.UUID
	UserId        uuid.UUID
	Rating        string
	Comment       *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}

// FeedbackFeedItem is a feedback row joined with its author and target
// message, as shown on the admin dashboard feed.
type FeedbackFeedItem struct {
	Feedback         ChatFeedback
	UserName         string
	MessageText      string
	MessageSessionId uuid.UUID
}
