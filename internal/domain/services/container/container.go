package container

import (
	"sync"

	"village-admin-service/internal/domain/services"
	"village-admin-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ServiceContainer wires every service to its dependencies
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	residentService      services.InterfaceResidentService
	financeService       services.InterfaceFinanceService
	budgetService        services.InterfaceBudgetService
	eventService         services.InterfaceEventService
	assetService         services.InterfaceAssetService
	publicServiceService services.InterfacePublicServiceService

	mu sync.RWMutex
}

// NewServiceContainer creates the service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices constructs every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.residentService = services.NewResidentService(c.db, c.config)
	c.financeService = services.NewFinanceService(c.db, c.config)
	c.budgetService = services.NewBudgetService(c.db, c.config)
	c.eventService = services.NewEventService(c.db, c.config)
	c.assetService = services.NewAssetService(c.db, c.config)
	c.publicServiceService = services.NewPublicServiceService(c.db, c.config)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "resident":
		return c.residentService
	case "finance":
		return c.financeService
	case "budget":
		return c.budgetService
	case "event":
		return c.eventService
	case "asset":
		return c.assetService
	case "public_service":
		return c.publicServiceService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
