package services

import (
	"errors"
	"time"

	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrResidentNotFound is returned by mutations targeting a nonexistent resident
var ErrResidentNotFound = errors.New("resident not found")

// InterfaceResidentService defines the resident service interface
type InterfaceResidentService interface {
	GetAllResidents() ([]models.Resident, error)
	GetResidentByID(id uint) (*models.Resident, error)
	CreateResident(resident *models.Resident) error
	UpdateResident(id uint, updates map[string]interface{}) (*models.Resident, error)
	DeleteResident(id uint) (bool, error)
}

// ResidentService provides resident record keeping
type ResidentService struct {
	entityStore[models.Resident]
	Config *config.Config
}

// NewResidentService creates a new resident service
func NewResidentService(db *gorm.DB, cfg *config.Config) InterfaceResidentService {
	return &ResidentService{
		entityStore: entityStore[models.Resident]{DB: db},
		Config:      cfg,
	}
}

// GetAllResidents returns every resident in insertion order
func (s *ResidentService) GetAllResidents() ([]models.Resident, error) {
	return s.getAll()
}

// GetResidentByID returns the resident, or nil when the id is unknown
func (s *ResidentService) GetResidentByID(id uint) (*models.Resident, error) {
	return s.getByID(id)
}

// CreateResident persists a new resident; id and timestamps are assigned here
func (s *ResidentService) CreateResident(resident *models.Resident) error {
	return s.create(resident)
}

// UpdateResident merges the sparse change set onto the stored resident. The
// modification timestamp is always advanced, whichever fields changed.
func (s *ResidentService) UpdateResident(id uint, updates map[string]interface{}) (*models.Resident, error) {
	resident, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, ErrResidentNotFound
	}

	updates["updated_at"] = time.Now()
	return s.applyUpdates(id, resident, updates)
}

// DeleteResident removes the resident and reports whether a row existed
func (s *ResidentService) DeleteResident(id uint) (bool, error) {
	return s.deleteByID(id)
}
