package models

import "time"

// AssetStatus represents the status of an inventory asset
type AssetStatus string

const (
	AssetStatusActive      AssetStatus = "active"
	AssetStatusInactive    AssetStatus = "inactive"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
)

// Asset represents one inventory asset. AssetCode is the identifier encoded
// into the printed QR label and is what scans resolve against.
type Asset struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	AssetCode       string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"assetCode"`
	Name            string      `gorm:"type:varchar(100);not null" json:"name"`
	Category        string      `gorm:"type:varchar(50)" json:"category"`
	Status          AssetStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	Description     string      `gorm:"type:text" json:"description,omitempty"`
	Company         string      `gorm:"type:varchar(100)" json:"company"`
	Location        string      `gorm:"type:varchar(100)" json:"location"`
	AssignedTo      string      `gorm:"type:varchar(100)" json:"assignedTo,omitempty"`
	PurchaseDate    *time.Time  `json:"purchaseDate,omitempty"`
	PurchasePrice   float64     `json:"purchasePrice"`
	Model           string      `gorm:"type:varchar(100)" json:"model,omitempty"`
	SerialNumber    string      `gorm:"type:varchar(100)" json:"serialNumber,omitempty"`
	Manufacturer    string      `gorm:"type:varchar(100)" json:"manufacturer,omitempty"`
	Supplier        string      `gorm:"type:varchar(100)" json:"supplier,omitempty"`
	Specifications  string      `gorm:"type:text" json:"specifications,omitempty"`
	WarrantyMonths  int         `json:"warranty,omitempty"`
	WarrantyExpiry  *time.Time  `json:"warrantyExpiry,omitempty"`
	LastMaintenance *time.Time  `json:"lastMaintenance,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	// Relations
	ScanRecords []ScanRecord `gorm:"foreignKey:AssetID" json:"scan_records,omitempty"`
}
