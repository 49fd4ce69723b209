package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuickInsight struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title           string         `gorm:"type:text;not null"`
	Text            string         `gorm:"type:text;not null"`
	SourceDocuments datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
}

func (QuickInsight) TableName() string {
	return "quick_insights"
}
