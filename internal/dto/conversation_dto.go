package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListConversationsRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
}

type ConversationResponse struct {
	Id        uuid.UUID  `json:"id"`
	ThreadId  string     `json:"thread_id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type DeleteConversationRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
	ThreadId    string `json:"thread_id" validate:"required"`
}

type SaveTitleRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
	ThreadId    string `json:"thread_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
}

type GenerateTitleRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
	ThreadId    string `json:"thread_id" validate:"required"`
}

type TitleResponse struct {
	ThreadId string `json:"thread_id"`
	Title    string `json:"title"`
}
