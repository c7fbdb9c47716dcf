package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
	"github.com/punura-itd/CIC-AGRI-IMS/models"
	"github.com/punura-itd/CIC-AGRI-IMS/utils"
)

// ErrUserNotFound is returned when a lookup misses
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials is returned on a failed login
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrUserAlreadyExists is returned when a create would reuse a username or email
var ErrUserAlreadyExists = errors.New("username or email already in use")

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	Login(username, password string) (*models.User, error)
	GetAllUsers(query models.PaginationQuery) ([]models.User, models.PaginationResult, error)
	GetUserByID(id uint) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) error
	EnsureDefaultAdmin() error
}

// UserService provides account operations
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Login verifies credentials and stamps the last login time
func (s *UserService) Login(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Status != models.UserStatusActive {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.DB.Model(&user).Update("last_login", &now).Error; err != nil {
		config.Warning("failed to stamp last login for user %d: %v", user.ID, err)
	}
	user.LastLogin = &now

	return &user, nil
}

// 2 GetAllUsers returns a page of users
func (s *UserService) GetAllUsers(query models.PaginationQuery) ([]models.User, models.PaginationResult, error) {
	if query.PageNum <= 0 {
		query.PageNum = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = 20
	}

	var total int64
	if err := s.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	var users []models.User
	if err := s.DB.Order("created_at desc").
		Offset((query.PageNum - 1) * query.PageSize).
		Limit(query.PageSize).
		Find(&users).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	return users, models.NewPaginationResult(int(total), query.PageNum, query.PageSize), nil
}

// 3 GetUserByID returns a user by primary key
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// 4 CreateUser creates a new user with a hashed password
func (s *UserService) CreateUser(user *models.User) error {
	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUserAlreadyExists
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	// Store the role as given; unknown roles degrade to user at check time
	if user.Role == "" {
		user.Role = string(models.RoleUser)
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	return s.DB.Create(user).Error
}

// 5 UpdateUser updates a user; a password update is re-hashed
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if password, ok := updates["password"].(string); ok && password != "" {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetUserByID(id)
}

// 6 DeleteUser deletes a user
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(user).Error
}

// 7 EnsureDefaultAdmin seeds the bootstrap superadmin on first run
func (s *UserService) EnsureDefaultAdmin() error {
	var count int64
	if err := s.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := &models.User{
		Name:     "System Administrator",
		Email:    s.Config.DefaultAdminUsername + "@local",
		Username: s.Config.DefaultAdminUsername,
		Password: s.Config.DefaultAdminPassword,
		Role:     string(models.RoleSuperAdmin),
		Status:   models.UserStatusActive,
	}
	if err := s.CreateUser(admin); err != nil {
		return err
	}
	config.Info("seeded default admin account %q", admin.Username)
	return nil
}
