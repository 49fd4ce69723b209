package model

import (
	"time"

	"github.com/google/uuid"
)

type TurnCitation struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TurnId     uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentId string    `gorm:"type:varchar(128);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (TurnCitation) TableName() string {
	return "turn_citations"
}
