package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
)

// ErrPolicyNotFound is returned when a lookup misses
var ErrPolicyNotFound = errors.New("insurance policy not found")

// ErrPolicyNumberTaken is returned when a create or update would reuse a policy number
var ErrPolicyNumberTaken = errors.New("policy number already in use")

// InterfaceInsuranceService defines the insurance service interface
type InterfaceInsuranceService interface {
	GetAllPolicies() ([]models.InsurancePolicy, error)
	GetPolicyByID(id uint) (*models.InsurancePolicy, error)
	CreatePolicy(policy *models.InsurancePolicy) error
	UpdatePolicy(id uint, updates map[string]interface{}) (*models.InsurancePolicy, error)
	DeletePolicy(id uint) error
}

// InsuranceService provides insurance policy operations
type InsuranceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewInsuranceService creates a new insurance service
func NewInsuranceService(db *gorm.DB, cfg *config.Config) InterfaceInsuranceService {
	return &InsuranceService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllPolicies returns all policies with their covered asset
func (s *InsuranceService) GetAllPolicies() ([]models.InsurancePolicy, error) {
	var policies []models.InsurancePolicy
	if err := s.DB.Preload("Asset").Order("created_at desc").Find(&policies).Error; err != nil {
		return nil, err
	}

	return policies, nil
}

// 2 GetPolicyByID returns a policy by primary key
func (s *InsuranceService) GetPolicyByID(id uint) (*models.InsurancePolicy, error) {
	var policy models.InsurancePolicy
	if err := s.DB.Preload("Asset").First(&policy, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}

	return &policy, nil
}

// 3 CreatePolicy creates a new policy
func (s *InsuranceService) CreatePolicy(policy *models.InsurancePolicy) error {
	var count int64
	if err := s.DB.Model(&models.InsurancePolicy{}).
		Where("policy_number = ?", policy.PolicyNumber).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrPolicyNumberTaken
	}

	if policy.Status == "" {
		policy.Status = "active"
	}

	return s.DB.Create(policy).Error
}

// 4 UpdatePolicy updates a policy
func (s *InsuranceService) UpdatePolicy(id uint, updates map[string]interface{}) (*models.InsurancePolicy, error) {
	policy, err := s.GetPolicyByID(id)
	if err != nil {
		return nil, err
	}

	if policyNumber, ok := updates["policy_number"].(string); ok && policyNumber != policy.PolicyNumber {
		var count int64
		if err := s.DB.Model(&models.InsurancePolicy{}).
			Where("policy_number = ? AND id != ?", policyNumber, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrPolicyNumberTaken
		}
	}

	if err := s.DB.Model(policy).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetPolicyByID(id)
}

// 5 DeletePolicy deletes a policy
func (s *InsuranceService) DeletePolicy(id uint) error {
	policy, err := s.GetPolicyByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(policy).Error
}
