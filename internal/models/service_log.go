package models

import (
	"encoding/json"
	"time"
)

// ServiceLog is an immutable audit entry for one ServiceRecord mutation.
// ChangedFields holds the full field snapshot on create and an
// {old, new} pair per changed field on update.
type ServiceLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceRecordID uint `gorm:"not null;index" json:"service_record_id"`

	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	ChangeDate    time.Time       `gorm:"autoCreateTime" json:"change_date"`
	ChangedFields json.RawMessage `gorm:"type:jsonb" json:"changed_fields"`
}
