package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByQuickInsightID struct {
	QuickInsightID uuid.UUID
}

func (s ByQuickInsightID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("quick_insight_id = ?", s.QuickInsightID)
}

type BySeqID struct {
	SeqID int
}

func (s BySeqID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("seq_id = ?", s.SeqID)
}
