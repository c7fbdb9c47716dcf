package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

// ErrSupplierNotFound is returned when a lookup misses
var ErrSupplierNotFound = errors.New("supplier not found")

// InterfaceSupplierService defines the supplier service interface
type InterfaceSupplierService interface {
	GetAllSuppliers() ([]models.Supplier, error)
	GetSupplierByID(id uint) (*models.Supplier, error)
	CreateSupplier(supplier *models.Supplier) error
	UpdateSupplier(id uint, updates map[string]interface{}) (*models.Supplier, error)
	DeleteSupplier(id uint) error
}

// SupplierService provides supplier operations
type SupplierService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSupplierService creates a new supplier service
func NewSupplierService(db *gorm.DB, cfg *config.Config) InterfaceSupplierService {
	return &SupplierService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllSuppliers returns all suppliers
func (s *SupplierService) GetAllSuppliers() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := s.DB.Order("name asc").Find(&suppliers).Error; err != nil {
		return nil, err
	}

	return suppliers, nil
}

// 2 GetSupplierByID returns a supplier by primary key
func (s *SupplierService) GetSupplierByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.DB.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	return &supplier, nil
}

// 3 CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(supplier *models.Supplier) error {
	if supplier.Status == "" {
		supplier.Status = "active"
	}
	return s.DB.Create(supplier).Error
}

// 4 UpdateSupplier updates a supplier
func (s *SupplierService) UpdateSupplier(id uint, updates map[string]interface{}) (*models.Supplier, error) {
	supplier, err := s.GetSupplierByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(supplier).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetSupplierByID(id)
}

// 5 DeleteSupplier deletes a supplier
func (s *SupplierService) DeleteSupplier(id uint) error {
	supplier, err := s.GetSupplierByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(supplier).Error
}
