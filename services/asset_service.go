package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

// ErrAssetNotFound is returned when a lookup misses
var ErrAssetNotFound = errors.New("asset not found")

// ErrAssetCodeTaken is returned when a create or update would reuse a code
var ErrAssetCodeTaken = errors.New("asset code already in use")

// InterfaceAssetService defines the asset service interface
type InterfaceAssetService interface {
	GetAllAssets(query models.PaginationQuery) ([]models.Asset, models.PaginationResult, error)
	GetAssetByID(id uint) (*models.Asset, error)
	GetAssetByCode(code string) (*models.Asset, error)
	CreateAsset(asset *models.Asset) error
	UpdateAsset(id uint, updates map[string]interface{}) (*models.Asset, error)
	DeleteAsset(id uint) error
}

// AssetService provides asset inventory operations
type AssetService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAssetService creates a new asset service
func NewAssetService(db *gorm.DB, cfg *config.Config) InterfaceAssetService {
	return &AssetService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllAssets returns a page of assets
func (s *AssetService) GetAllAssets(query models.PaginationQuery) ([]models.Asset, models.PaginationResult, error) {
	if query.PageNum <= 0 {
		query.PageNum = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = 20
	}

	var total int64
	if err := s.DB.Model(&models.Asset{}).Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	order := "created_at asc"
	if query.Desc {
		order = "created_at desc"
	}

	var assets []models.Asset
	if err := s.DB.Order(order).
		Offset((query.PageNum - 1) * query.PageSize).
		Limit(query.PageSize).
		Find(&assets).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	return assets, models.NewPaginationResult(int(total), query.PageNum, query.PageSize), nil
}

// 2 GetAssetByID returns an asset by primary key
func (s *AssetService) GetAssetByID(id uint) (*models.Asset, error) {
	var asset models.Asset
	if err := s.DB.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	return &asset, nil
}

// 3 GetAssetByCode resolves the code printed on a QR label to its asset.
// This is the lookup the scan session uses to enrich scans.
func (s *AssetService) GetAssetByCode(code string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.DB.Where("asset_code = ?", code).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	return &asset, nil
}

// 4 CreateAsset creates a new asset
func (s *AssetService) CreateAsset(asset *models.Asset) error {
	// The asset code must be unique since scans resolve against it
	var count int64
	if err := s.DB.Model(&models.Asset{}).Where("asset_code = ?", asset.AssetCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAssetCodeTaken
	}

	if asset.Status == "" {
		asset.Status = models.AssetStatusActive
	}

	return s.DB.Create(asset).Error
}

// 5 UpdateAsset updates an asset
func (s *AssetService) UpdateAsset(id uint, updates map[string]interface{}) (*models.Asset, error) {
	asset, err := s.GetAssetByID(id)
	if err != nil {
		return nil, err
	}

	// An asset code change must keep the code unique
	if assetCode, ok := updates["asset_code"].(string); ok && assetCode != asset.AssetCode {
		var count int64
		if err := s.DB.Model(&models.Asset{}).Where("asset_code = ? AND id != ?", assetCode, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrAssetCodeTaken
		}
	}

	if err := s.DB.Model(asset).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetAssetByID(id)
}

// 6 DeleteAsset deletes an asset
func (s *AssetService) DeleteAsset(id uint) error {
	asset, err := s.GetAssetByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(asset).Error
}
