package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyCode string `gorm:"size:50;uniqueIndex;not null" json:"company_code"`
	CompanyName string `gorm:"size:255;not null" json:"company_name"`

	Address   string `gorm:"type:text" json:"address"`
	Phone     string `gorm:"size:20" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
	TaxNumber string `gorm:"size:20" json:"tax_number"`
	TaxOffice string `gorm:"size:100" json:"tax_office"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
