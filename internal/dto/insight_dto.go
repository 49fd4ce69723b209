package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SaveInsightRequest struct {
	ExternalUid    string          `json:"external_uid" validate:"required"`
	ThreadId       string          `json:"thread_id" validate:"required"`
	Text           string          `json:"text" validate:"required"`
	Data           json.RawMessage `json:"data,omitempty"`
	FileReferences []string        `json:"file_references,omitempty"`
}

type InsightResponse struct {
	Id             uuid.UUID       `json:"id"`
	SeqId          int             `json:"seq_id"`
	Text           string          `json:"text"`
	Data           json.RawMessage `json:"data,omitempty"`
	FileReferences []string        `json:"file_references,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type DeleteInsightRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
	ThreadId    string `json:"thread_id" validate:"required"`
	SeqId       int    `json:"seq_id" validate:"required"`
}

type ListInsightsRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
	ThreadId    string `json:"thread_id" validate:"required"`
}

type QuickInsightResponse struct {
	Id              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Text            string    `json:"text"`
	SourceDocuments []string  `json:"source_documents,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ListQuickInsightsRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
}

type ListSavedResponsesRequest struct {
	ExternalUid string `json:"external_uid" validate:"required"`
	ThreadId    string `json:"thread_id" validate:"required"`
}

type PromoteQuickInsightRequest struct {
	ExternalUid    string    `json:"external_uid" validate:"required"`
	ThreadId       string    `json:"thread_id" validate:"required"`
	QuickInsightId uuid.UUID `json:"quick_insight_id" validate:"required"`
}
