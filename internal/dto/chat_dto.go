package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	ExternalUid string   `json:"external_uid" validate:"required"`
	Query       string   `json:"query" validate:"required"`
	ThreadId    string   `json:"thread_id,omitempty"`
	FileIds     []string `json:"file_ids,omitempty"`
	Filenames   []string `json:"filenames,omitempty"`
}

type FollowUpQuestionDTO struct {
	Question string `json:"question"`
}

type ChatResponse struct {
	Answer            string                `json:"answer"`
	ThreadId          string                `json:"thread_id"`
	FollowUpQuestions []FollowUpQuestionDTO `json:"follow_up_questions,omitempty"`
	CitedFileIds      []string              `json:"cited_file_ids"`
}

type SearchRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
	Query       string `json:"query" validate:"required"`
}

type SearchResponse struct {
	CitedFileIds []string `json:"cited_file_ids"`
}

type ListMessagesRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
	ThreadId    string `json:"thread_id" validate:"required"`
}

type MessageResponse struct {
	Id           uuid.UUID `json:"id"`
	Role         string    `json:"role"`
	Text         string    `json:"text"`
	CitedFileIds []string  `json:"cited_file_ids,omitempty"`
	CitedFiles   []string  `json:"cited_files,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListMessagesResponse struct {
	ThreadId string             `json:"thread_id"`
	Messages []*MessageResponse `json:"messages"`
}

type GenerateQuickInsightsRequest struct {
	ExternalUid string   `json:"external_uid" validate:"required"`
	FileIds     []string `json:"file_ids,omitempty"`
}
