package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is one support conversation thread. Title stays nil until
// the first exchange generates one; AiConfigurationKey selects the AI
// profile and may lag the registry (resolution falls back to default).
type ChatSession struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	Title              *string
	AiConfigurationKey string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	DeletedAt          *time.Time
	IsDeleted          bool
}
