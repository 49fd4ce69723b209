package model

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ExternalUid          string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	Email                string    `gorm:"type:varchar(255);not null"`
	RetrievalHandle      string    `gorm:"type:varchar(128);not null"`
	AnalysisHandle       string    `gorm:"type:varchar(128);not null"`
	CorpusId             string    `gorm:"type:varchar(128);not null"`
	QuickInsightThreadId *string   `gorm:"type:varchar(128)"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

func (Account) TableName() string {
	return "accounts"
}
