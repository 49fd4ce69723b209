package model

import (
	"time"

	"github.com/google/uuid"
)

type SavedResponse struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID `gorm:"type:uuid;not null;index:idx_saved_responses_conversation_insight,unique,priority:1"`
	QuickInsightId uuid.UUID `gorm:"type:uuid;not null;index:idx_saved_responses_conversation_insight,unique,priority:2"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (SavedResponse) TableName() string {
	return "saved_responses"
}
