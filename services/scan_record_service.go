package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

// ErrScanRecordNotFound is returned when a lookup misses
var ErrScanRecordNotFound = errors.New("scan record not found")

// InterfaceScanRecordService defines the scan record service interface.
// Records are the backend rows written on confirm; they are never deleted,
// only the KV ledger is clearable.
type InterfaceScanRecordService interface {
	CreateScan(record *models.ScanRecord) error
	GetAllScans(query models.PaginationQuery) ([]models.ScanRecord, models.PaginationResult, error)
	GetScanByID(id uint) (*models.ScanRecord, error)
	GetScansByAsset(assetID uint) ([]models.ScanRecord, error)
	UpdateScan(id uint, updates map[string]interface{}) (*models.ScanRecord, error)
}

// ScanRecordService provides scan record operations
type ScanRecordService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewScanRecordService creates a new scan record service
func NewScanRecordService(db *gorm.DB, cfg *config.Config) InterfaceScanRecordService {
	return &ScanRecordService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CreateScan writes a confirmed scan row
func (s *ScanRecordService) CreateScan(record *models.ScanRecord) error {
	return s.DB.Create(record).Error
}

// 2 GetAllScans returns a page of scan records, newest first by default
func (s *ScanRecordService) GetAllScans(query models.PaginationQuery) ([]models.ScanRecord, models.PaginationResult, error) {
	if query.PageNum <= 0 {
		query.PageNum = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = 20
	}

	var total int64
	if err := s.DB.Model(&models.ScanRecord{}).Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	var records []models.ScanRecord
	if err := s.DB.Preload("Asset").Preload("User").
		Order("scan_date desc").
		Offset((query.PageNum - 1) * query.PageSize).
		Limit(query.PageSize).
		Find(&records).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	return records, models.NewPaginationResult(int(total), query.PageNum, query.PageSize), nil
}

// 3 GetScanByID returns a scan record by primary key
func (s *ScanRecordService) GetScanByID(id uint) (*models.ScanRecord, error) {
	var record models.ScanRecord
	if err := s.DB.Preload("Asset").Preload("User").First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScanRecordNotFound
		}
		return nil, err
	}

	return &record, nil
}

// 4 GetScansByAsset returns the scan history of one asset
func (s *ScanRecordService) GetScansByAsset(assetID uint) ([]models.ScanRecord, error) {
	var records []models.ScanRecord
	if err := s.DB.Where("asset_id = ?", assetID).
		Order("scan_date desc").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// 5 UpdateScan corrects a scan record, e.g. a mislabeled location
func (s *ScanRecordService) UpdateScan(id uint, updates map[string]interface{}) (*models.ScanRecord, error) {
	record, err := s.GetScanByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(record).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetScanByID(id)
}
