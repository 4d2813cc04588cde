package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one turn in a session. Turns are append-only; there is
// no update path anywhere in the codebase.
type ChatMessage struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;index"`
	Sender        string
	Message       string
	CreatedAt     time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
