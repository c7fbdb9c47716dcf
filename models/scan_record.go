package models

import "time"

// ScanRecord is the backend row written when an operator confirms a scan.
// AssetID is nil when the scanned code did not resolve to a known asset.
type ScanRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AssetID      *uint     `json:"assetId,omitempty"`
	ScanDate     time.Time `gorm:"not null" json:"scanDate"`
	ScanLocation string    `gorm:"type:varchar(100);not null" json:"scanLocation"`
	UserID       uint      `json:"userId"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Asset *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
