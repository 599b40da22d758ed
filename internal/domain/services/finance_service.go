package services

import (
	"errors"

	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrTransactionNotFound is returned by updates targeting a nonexistent transaction
var ErrTransactionNotFound = errors.New("finance transaction not found")

// FinanceSummary is the on-demand aggregate over all finance transactions.
// It is recomputed from the current rows on every call; there is no cached
// copy to invalidate.
type FinanceSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// InterfaceFinanceService defines the finance transaction service interface
type InterfaceFinanceService interface {
	GetAllTransactions() ([]models.FinanceTransaction, error)
	GetTransactionByID(id uint) (*models.FinanceTransaction, error)
	CreateTransaction(tx *models.FinanceTransaction) error
	UpdateTransaction(id uint, updates map[string]interface{}) (*models.FinanceTransaction, error)
	DeleteTransaction(id uint) error
	GetFinanceSummary() (*FinanceSummary, error)
}

// FinanceService provides village finance record keeping
type FinanceService struct {
	entityStore[models.FinanceTransaction]
	Config *config.Config
}

// NewFinanceService creates a new finance service
func NewFinanceService(db *gorm.DB, cfg *config.Config) InterfaceFinanceService {
	return &FinanceService{
		entityStore: entityStore[models.FinanceTransaction]{DB: db},
		Config:      cfg,
	}
}

// GetAllTransactions returns every transaction in insertion order
func (s *FinanceService) GetAllTransactions() ([]models.FinanceTransaction, error) {
	return s.getAll()
}

// GetTransactionByID returns the transaction, or nil when the id is unknown
func (s *FinanceService) GetTransactionByID(id uint) (*models.FinanceTransaction, error) {
	return s.getByID(id)
}

// CreateTransaction persists a new transaction
func (s *FinanceService) CreateTransaction(tx *models.FinanceTransaction) error {
	return s.create(tx)
}

// UpdateTransaction merges the sparse change set onto the stored transaction.
// Transactions carry no modification timestamp, so none is touched.
func (s *FinanceService) UpdateTransaction(id uint, updates map[string]interface{}) (*models.FinanceTransaction, error) {
	tx, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}

	return s.applyUpdates(id, tx, updates)
}

// DeleteTransaction removes the transaction. Unlike the other entities this
// delete does not report whether a row existed: it succeeds whenever the
// statement itself succeeds, matching the behavior existing clients rely on.
func (s *FinanceService) DeleteTransaction(id uint) error {
	_, err := s.deleteByID(id)
	return err
}

// GetFinanceSummary computes income, expense and balance from the current rows
func (s *FinanceService) GetFinanceSummary() (*FinanceSummary, error) {
	totalIncome, err := s.sumAmountByType(models.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.sumAmountByType(models.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}

	return &FinanceSummary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}, nil
}

// sumAmountByType sums amount over one transaction type; zero rows sum to 0
func (s *FinanceService) sumAmountByType(txType string) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := s.DB.Model(&models.FinanceTransaction{}).
		Where("type = ?", txType).
		Select("COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
