package models

import "time"

// Service is the external service company a device is sent to,
// not the repair ticket itself (that is ServiceRecord).
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
