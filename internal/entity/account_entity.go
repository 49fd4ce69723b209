package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account owns exactly one index binding (the two capability handles) and
// one corpus. All three are provisioned once and never mutated afterwards.
type Account struct {
	Id                   uuid.UUID
	ExternalUid          string
	Email                string
	RetrievalHandle      string
	AnalysisHandle       string
	CorpusId             string
	QuickInsightThreadId *string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}
