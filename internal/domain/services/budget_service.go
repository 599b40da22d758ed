package services

import (
	"errors"
	"time"

	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrBudgetNotFound is returned by updates targeting a nonexistent budget
var ErrBudgetNotFound = errors.New("budget not found")

// InterfaceBudgetService defines the budget service interface
type InterfaceBudgetService interface {
	GetAllBudgets() ([]models.Budget, error)
	GetBudgetByID(id uint) (*models.Budget, error)
	GetBudgetsByYear(year int) ([]models.Budget, error)
	CreateBudget(budget *models.Budget) error
	UpdateBudget(id uint, updates map[string]interface{}) (*models.Budget, error)
	DeleteBudget(id uint) (bool, error)
}

// BudgetService provides village budget record keeping
type BudgetService struct {
	entityStore[models.Budget]
	Config *config.Config
}

// NewBudgetService creates a new budget service
func NewBudgetService(db *gorm.DB, cfg *config.Config) InterfaceBudgetService {
	return &BudgetService{
		entityStore: entityStore[models.Budget]{DB: db},
		Config:      cfg,
	}
}

// GetAllBudgets returns every budget in insertion order
func (s *BudgetService) GetAllBudgets() ([]models.Budget, error) {
	return s.getAll()
}

// GetBudgetByID returns the budget, or nil when the id is unknown
func (s *BudgetService) GetBudgetByID(id uint) (*models.Budget, error) {
	return s.getByID(id)
}

// GetBudgetsByYear returns the budgets allocated for one year
func (s *BudgetService) GetBudgetsByYear(year int) ([]models.Budget, error) {
	budgets := make([]models.Budget, 0)
	if err := s.DB.Where("year = ?", year).Order("id").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

// CreateBudget persists a new budget. UsedAmount always starts at zero; it is
// never taken from the caller and never derived from finance transactions.
func (s *BudgetService) CreateBudget(budget *models.Budget) error {
	budget.UsedAmount = decimal.Zero
	return s.create(budget)
}

// UpdateBudget merges the sparse change set onto the stored budget
func (s *BudgetService) UpdateBudget(id uint, updates map[string]interface{}) (*models.Budget, error) {
	budget, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, ErrBudgetNotFound
	}

	updates["updated_at"] = time.Now()
	return s.applyUpdates(id, budget, updates)
}

// DeleteBudget removes the budget and reports whether a row existed
func (s *BudgetService) DeleteBudget(id uint) (bool, error) {
	return s.deleteByID(id)
}
