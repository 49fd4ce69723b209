package model

import (
	"time"

	"github.com/google/uuid"
)

type Turn struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID `gorm:"type:uuid;not null;index"`
	Role           string    `gorm:"type:varchar(16);not null"`
	DisplayText    string    `gorm:"type:text;not null"`
	FullPromptText *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Turn) TableName() string {
	return "turns"
}
