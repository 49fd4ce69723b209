package dto

import "github.com/google/uuid"

const (
	FileEventIngested = "FILE_INGESTED"
	FileEventDeleted  = "FILE_DELETED"
)

// FileEventMessage is the payload published after ingestion or deletion.
// The reconciler consumes it to sweep the owning account for drift.
type FileEventMessage struct {
	Type        string    `json:"type"`
	AccountId   uuid.UUID `json:"account_id"`
	DocumentIds []string  `json:"document_ids"`
}
