package entity

import (
	"time"

	"github.com/google/uuid"
)

// Insight is a user-saved excerpt scoped to one conversation. SeqId is
// sequential within the conversation and never reused after deletion;
// deletes are soft so the max seq can still be computed over dead rows.
type Insight struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	SeqId          int
	Text           string
	Data           []byte // optional JSON payload attached by the caller
	FileReferences []string
	CreatedAt      time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

// QuickInsight is a system-generated summary item produced by a batch
// generation call, independent of any live conversation.
type QuickInsight struct {
	Id              uuid.UUID
	AccountId       uuid.UUID
	Title           string
	Text            string
	SourceDocuments []string
	CreatedAt       time.Time
}

// SavedResponse promotes a quick insight into a conversation by reference.
// The insight body is never duplicated.
type SavedResponse struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	QuickInsightId uuid.UUID
	CreatedAt      time.Time
}
