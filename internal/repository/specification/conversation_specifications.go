package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByThreadID struct {
	ThreadID string
}

func (s ByThreadID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("thread_id = ?", s.ThreadID)
}

type ByConversationID struct {
	ConversationID uuid.UUID
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

type ByTurnID struct {
	TurnID uuid.UUID
}

func (s ByTurnID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("turn_id = ?", s.TurnID)
}

type ByTurnIDs struct {
	TurnIDs []uuid.UUID
}

func (s ByTurnIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("turn_id IN ?", s.TurnIDs)
}
