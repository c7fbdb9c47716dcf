package models

import "time"

// Supplier represents a vendor that assets are purchased from
type Supplier struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	ContactPerson string    `gorm:"type:varchar(100)" json:"contact_person"`
	Email         string    `gorm:"type:varchar(100)" json:"email"`
	Phone         string    `gorm:"type:varchar(30)" json:"phone"`
	Address       string    `gorm:"type:varchar(255)" json:"address"`
	Status        string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
