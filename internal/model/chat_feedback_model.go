package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatFeedback struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatMessageId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_chat_feedback_message_user"`
	UserId        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_chat_feedback_message_user"`
	Rating        string         `gorm:"type:varchar(20);not null"`
	Comment       *string        `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	// Relationships for the dashboard feed
	ChatMessage *ChatMessage `gorm:"foreignKey:ChatMessageId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User        *User        `gorm:"foreignKey:UserId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (ChatFeedback) TableName() string {
	return "chat_feedbacks"
}
