package models

import "time"

// Notification is created by the stale-record sweep only; the API just
// lists them and toggles is_read.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ServiceRecordID uint          `gorm:"not null;index" json:"service_record_id"`
	ServiceRecord   ServiceRecord `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service_record"`

	Message     string `gorm:"type:text;not null" json:"message"`
	OverdueDays int    `gorm:"default:0" json:"overdue_days"`
	IsRead      bool   `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
