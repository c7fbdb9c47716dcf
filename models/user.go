package models

import "time"

// UserStatus represents the lifecycle state of a user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User represents an account that can log in to the system. Role holds the
// raw upstream role string; permission checks always go through
// NormalizeRole first.
type User struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"type:varchar(100);not null" json:"name"`
	Email      string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Username   string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password   string     `gorm:"type:varchar(100);not null" json:"-"`
	Role       string     `gorm:"type:varchar(30);default:'user'" json:"role"`
	Department string     `gorm:"type:varchar(100)" json:"department"`
	Status     UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	Phone      string     `gorm:"type:varchar(30)" json:"phone,omitempty"`
	JoinDate   *time.Time `json:"join_date,omitempty"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relations
	ScanRecords []ScanRecord `gorm:"foreignKey:UserID" json:"scan_records,omitempty"`
}
