package dto

import (
	"time"

	"github.com/google/uuid"
)

type DashboardStats struct {
	Total              int64   `json:"total"`
	Positive           int64   `json:"positive"`
	Negative           int64   `json:"negative"`
	PositivePercentage float64 `json:"positivePercentage"`
	TotalSessions      int64   `json:"totalSessions"`
}

type FeedbackUserDTO struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type FeedbackMessageDTO struct {
	Id            uuid.UUID `json:"id"`
	Message       string    `json:"message"`
	ChatSessionId uuid.UUID `json:"chat_session_id"`
}

type FeedbackFeedEntryDTO struct {
	Id          uuid.UUID           `json:"id"`
	Rating      string              `json:"rating"`
	Comment     *string             `json:"comment"`
	CreatedAt   time.Time           `json:"created_at"`
	User        *FeedbackUserDTO    `json:"user"`
	ChatMessage *FeedbackMessageDTO `json:"chat_message"`
}

type DashboardResponse struct {
	Stats          *DashboardStats         `json:"stats"`
	RecentFeedback []*FeedbackFeedEntryDTO `json:"recentFeedback"`
	Page           int                     `json:"page"`
	PerPage        int                     `json:"per_page"`
}
