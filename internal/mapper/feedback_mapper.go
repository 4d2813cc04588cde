package mapper

import (
	"time"

	"ai-support-be/internal/entity"
	"ai-support-be/internal/model"

	"gorm.io/gorm"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(fb *model.ChatFeedback) *entity.ChatFeedback {
	if fb == nil {
		return nil
	}

	var deletedAt *time.Time
	if fb.DeletedAt.Valid {
		t := fb.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !fb.UpdatedAt.IsZero() {
		t := fb.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatFeedback{
		Id:            fb.Id,
		ChatMessageId: fb.ChatMessageId,
		UserId:        fb.UserId,
		Rating:        fb.Rating,
		Comment:       fb.Comment,
		CreatedAt:     fb.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     fb.DeletedAt.Valid,
	}
}

func (m *FeedbackMapper) ToModel(fb *entity.ChatFeedback) *model.ChatFeedback {
	if fb == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if fb.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *fb.DeletedAt, Valid: true}
	} else if fb.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if fb.UpdatedAt != nil {
		updatedAt = *fb.UpdatedAt
	}

	return &model.ChatFeedback{
		Id:            fb.Id,
		ChatMessageId: fb.ChatMessageId,
		UserId:        fb.UserId,
		Rating:        fb.Rating,
		Comment:       fb.Comment,
		CreatedAt:     fb.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

// ToFeedItem flattens a feedback row with its preloaded relations for
// the dashboard feed.
func (m *FeedbackMapper) ToFeedItem(fb *model.ChatFeedback) *entity.FeedbackFeedItem {
	if fb == nil {
		return nil
	}

	item := &entity.FeedbackFeedItem{
		Feedback: *m.ToEntity(fb),
	}
	if fb.User != nil {
		item.UserName = fb.User.FullName
	}
	if fb.ChatMessage != nil {
		item.MessageText = fb.ChatMessage.Message
		item.MessageSessionId = fb.ChatMessage.ChatSessionId
	}
	return item
}
