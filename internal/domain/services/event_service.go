package services

import (
	"errors"
	"time"

	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrEventNotFound is returned by updates targeting a nonexistent event
var ErrEventNotFound = errors.New("event not found")

// InterfaceEventService defines the event service interface
type InterfaceEventService interface {
	GetAllEvents() ([]models.Event, error)
	GetEventByID(id uint) (*models.Event, error)
	GetUpcomingEvents() ([]models.Event, error)
	CreateEvent(event *models.Event) error
	UpdateEvent(id uint, updates map[string]interface{}) (*models.Event, error)
	DeleteEvent(id uint) (bool, error)
}

// EventService provides village event record keeping
type EventService struct {
	entityStore[models.Event]
	Config *config.Config
}

// NewEventService creates a new event service
func NewEventService(db *gorm.DB, cfg *config.Config) InterfaceEventService {
	return &EventService{
		entityStore: entityStore[models.Event]{DB: db},
		Config:      cfg,
	}
}

// GetAllEvents returns every event in insertion order
func (s *EventService) GetAllEvents() ([]models.Event, error) {
	return s.getAll()
}

// GetEventByID returns the event, or nil when the id is unknown
func (s *EventService) GetEventByID(id uint) (*models.Event, error) {
	return s.getByID(id)
}

// GetUpcomingEvents returns events whose status is planned or ongoing. This is
// purely a status filter: an event dated in the past but still marked planned
// is still upcoming.
func (s *EventService) GetUpcomingEvents() ([]models.Event, error) {
	events := make([]models.Event, 0)
	if err := s.DB.Where("status IN ?", models.UpcomingEventStatuses).Order("id").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent persists a new event; an empty status defaults to planned
func (s *EventService) CreateEvent(event *models.Event) error {
	if event.Status == "" {
		event.Status = models.EventStatusPlanned
	}
	return s.create(event)
}

// UpdateEvent merges the sparse change set onto the stored event
func (s *EventService) UpdateEvent(id uint, updates map[string]interface{}) (*models.Event, error) {
	event, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	updates["updated_at"] = time.Now()
	return s.applyUpdates(id, event, updates)
}

// DeleteEvent removes the event and reports whether a row existed
func (s *EventService) DeleteEvent(id uint) (bool, error) {
	return s.deleteByID(id)
}
