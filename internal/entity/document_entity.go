package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is one indexed unit. DocumentId is issued by the corpus on
// ingestion and is the join key across blob storage, index membership and
// this record. Rows derived from one multi-sheet upload share the full
// SheetDocumentIds list.
type Document struct {
	Id               uuid.UUID
	DocumentId       string
	AccountId        uuid.UUID
	DisplayName      string
	SheetName        *string
	SheetDocumentIds []string
	ContentType      string
	SizeBytes        int64
	RecordCount      int
	CreatedAt        time.Time
}
