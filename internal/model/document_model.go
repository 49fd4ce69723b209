package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Document struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId       string         `gorm:"type:varchar(128);not null;uniqueIndex"`
	AccountId        uuid.UUID      `gorm:"type:uuid;not null;index"` // Account ownership for data isolation
	DisplayName      string         `gorm:"type:varchar(255);not null"`
	SheetName        *string        `gorm:"type:varchar(255)"`
	SheetDocumentIds datatypes.JSON `gorm:"type:jsonb"`
	ContentType      string         `gorm:"type:varchar(128);not null"`
	SizeBytes        int64          `gorm:"not null"`
	RecordCount      int            `gorm:"not null"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
}

func (Document) TableName() string {
	return "documents"
}
