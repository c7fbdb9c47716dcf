package models

import "time"

// InsurancePolicy represents an insurance policy covering an asset
type InsurancePolicy struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	PolicyNumber   string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"policy_number"`
	Provider       string     `gorm:"type:varchar(100);not null" json:"provider"`
	AssetID        *uint      `json:"asset_id,omitempty"`
	CoverageAmount float64    `json:"coverage_amount"`
	Premium        float64    `json:"premium"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Status         string     `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	Asset *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
}
