package models

import "time"

type ServiceRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID *uint     `json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	BrandID *uint  `json:"brand_id"`
	Brand   *Brand `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"brand"`

	Model        string `gorm:"size:100;not null" json:"model"`
	SerialNumber string `gorm:"size:100" json:"serial_number"`
	Accessories  string `gorm:"size:255" json:"accessories"`

	ArrivalDate time.Time `gorm:"type:date;not null" json:"arrival_date"`
	Issue       string    `gorm:"type:text" json:"issue"`

	ServiceID *uint    `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ServiceSendDate   *time.Time `gorm:"type:date" json:"service_send_date"`
	ServiceOperation  string     `gorm:"type:text" json:"service_operation"`
	ServiceReturnDate *time.Time `gorm:"type:date" json:"service_return_date"`
	DeliveryDate      *time.Time `gorm:"type:date" json:"delivery_date"`

	CreatedUserID *uint `json:"created_user_id"`
	CreatedUser   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"created_user"`

	// Derived from the milestone dates on every write, never set by clients.
	Status string `gorm:"size:30;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Logs []ServiceLog `gorm:"constraint:OnDelete:CASCADE;" json:"logs,omitempty"`
}
