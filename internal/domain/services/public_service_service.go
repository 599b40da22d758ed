package services

import (
	"errors"
	"time"

	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrPublicServiceNotFound is returned by mutations targeting a nonexistent public service
var ErrPublicServiceNotFound = errors.New("public service not found")

// InterfacePublicServiceService defines the public service catalog interface
type InterfacePublicServiceService interface {
	GetAllServices() ([]models.PublicService, error)
	GetServiceByID(id uint) (*models.PublicService, error)
	GetActiveServices() ([]models.PublicService, error)
	CreateService(service *models.PublicService) error
	UpdateService(id uint, updates map[string]interface{}) (*models.PublicService, error)
	DeleteService(id uint) (bool, error)
	ToggleServiceStatus(id uint) (*models.PublicService, error)
}

// PublicServiceService provides the village public-service catalog
type PublicServiceService struct {
	entityStore[models.PublicService]
	Config *config.Config
}

// NewPublicServiceService creates a new public service catalog service
func NewPublicServiceService(db *gorm.DB, cfg *config.Config) InterfacePublicServiceService {
	return &PublicServiceService{
		entityStore: entityStore[models.PublicService]{DB: db},
		Config:      cfg,
	}
}

// GetAllServices returns every public service in insertion order
func (s *PublicServiceService) GetAllServices() ([]models.PublicService, error) {
	return s.getAll()
}

// GetServiceByID returns the public service, or nil when the id is unknown
func (s *PublicServiceService) GetServiceByID(id uint) (*models.PublicService, error) {
	return s.getByID(id)
}

// GetActiveServices returns the services currently offered
func (s *PublicServiceService) GetActiveServices() ([]models.PublicService, error) {
	services := make([]models.PublicService, 0)
	if err := s.DB.Where("is_active = ?", true).Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// CreateService persists a new public service
func (s *PublicServiceService) CreateService(service *models.PublicService) error {
	return s.create(service)
}

// UpdateService merges the sparse change set onto the stored public service
func (s *PublicServiceService) UpdateService(id uint, updates map[string]interface{}) (*models.PublicService, error) {
	service, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrPublicServiceNotFound
	}

	updates["updated_at"] = time.Now()
	return s.applyUpdates(id, service, updates)
}

// DeleteService removes the public service and reports whether a row existed
func (s *PublicServiceService) DeleteService(id uint) (bool, error) {
	return s.deleteByID(id)
}

// ToggleServiceStatus flips is_active in a single conditional update, so two
// concurrent toggles cannot lose each other. The modification timestamp is
// left untouched: a toggle changes nothing but the flag.
func (s *PublicServiceService) ToggleServiceStatus(id uint) (*models.PublicService, error) {
	res := s.DB.Model(&models.PublicService{}).
		Where("id = ?", id).
		UpdateColumn("is_active", gorm.Expr("NOT is_active"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrPublicServiceNotFound
	}

	service, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrPublicServiceNotFound
	}
	return service, nil
}
