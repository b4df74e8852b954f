package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:100" json:"email"`
	FirstName    string `gorm:"size:100" json:"first_name"`
	LastName     string `gorm:"size:100" json:"last_name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
