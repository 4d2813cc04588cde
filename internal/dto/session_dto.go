package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	AiConfigurationKey *string `json:"ai_configuration_key,omitempty" validate:"omitempty,max=100"`
}

type CreateSessionResponse struct {
	Id                 uuid.UUID `json:"id"`
	AiConfigurationKey string    `json:"ai_configuration_key"`
}

type SessionResponse struct {
	Id                 uuid.UUID  `json:"id"`
	Title              *string    `json:"title"`
	AiConfigurationKey string     `json:"ai_configuration_key"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

// AvailableConfigDTO is one entry of the profile dropdown (key -> label).
type AvailableConfigDTO struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type ListSessionsResponse struct {
	Sessions           []*SessionResponse    `json:"sessions"`
	AvailableAiConfigs []*AvailableConfigDTO `json:"available_ai_configs"`
	Page               int                   `json:"page"`
	PerPage            int                   `json:"per_page"`
}

type RenameSessionRequest struct {
	Title string `json:"title" validate:"required,max=100"`
}
