package dto

import (
	"github.com/google/uuid"
)

type SubmitFeedbackRequest struct {
	MessageId uuid.UUID `json:"message_id" validate:"required"`
	Rating    string    `json:"rating" validate:"required,oneof=positive negative"`
	Comment   *string   `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type SubmitFeedbackResponse struct {
	Success    bool      `json:"success"`
	FeedbackId uuid.UUID `json:"feedback_id"`
}
