package specification

import "gorm.io/gorm"

type ByExternalUid struct {
	ExternalUid string
}

func (s ByExternalUid) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("external_uid = ?", s.ExternalUid)
}
