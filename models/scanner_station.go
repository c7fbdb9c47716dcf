package models

import "time"

// StationStatus represents the reachability of a scanner station
type StationStatus string

const (
	StationStatusOnline  StationStatus = "online"
	StationStatusOffline StationStatus = "offline"
)

// ScannerStation is a registered capture device: a camera-equipped station
// that decodes QR labels and publishes the decoded payloads over MQTT.
type ScannerStation struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	StationID  string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"station_id"`
	Label      string        `gorm:"type:varchar(100)" json:"label"`
	Status     StationStatus `gorm:"type:varchar(20);default:'offline'" json:"status"`
	LastSeenAt *time.Time    `json:"last_seen_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
