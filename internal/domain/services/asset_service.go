package services

import (
	"errors"
	"time"

	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrAssetNotFound is returned by updates targeting a nonexistent asset
var ErrAssetNotFound = errors.New("asset not found")

// AssetsSummary is the on-demand aggregate over all asset rows. ByCondition
// carries all four condition keys even when their count is zero. Recomputed
// from the current rows on every call.
type AssetsSummary struct {
	TotalValue  decimal.Decimal  `json:"totalValue"`
	TotalCount  int64            `json:"totalCount"`
	ByCondition map[string]int64 `json:"byCondition"`
}

// InterfaceAssetService defines the asset service interface
type InterfaceAssetService interface {
	GetAllAssets() ([]models.Asset, error)
	GetAssetByID(id uint) (*models.Asset, error)
	GetAssetsByCategory(category string) ([]models.Asset, error)
	CreateAsset(asset *models.Asset) error
	UpdateAsset(id uint, updates map[string]interface{}) (*models.Asset, error)
	DeleteAsset(id uint) (bool, error)
	GetAssetsSummary() (*AssetsSummary, error)
}

// AssetService provides village asset record keeping
type AssetService struct {
	entityStore[models.Asset]
	Config *config.Config
}

// NewAssetService creates a new asset service
func NewAssetService(db *gorm.DB, cfg *config.Config) InterfaceAssetService {
	return &AssetService{
		entityStore: entityStore[models.Asset]{DB: db},
		Config:      cfg,
	}
}

// GetAllAssets returns every asset in insertion order
func (s *AssetService) GetAllAssets() ([]models.Asset, error) {
	return s.getAll()
}

// GetAssetByID returns the asset, or nil when the id is unknown
func (s *AssetService) GetAssetByID(id uint) (*models.Asset, error) {
	return s.getByID(id)
}

// GetAssetsByCategory returns assets whose category matches exactly
func (s *AssetService) GetAssetsByCategory(category string) ([]models.Asset, error) {
	assets := make([]models.Asset, 0)
	if err := s.DB.Where("category = ?", category).Order("id").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// CreateAsset persists a new asset
func (s *AssetService) CreateAsset(asset *models.Asset) error {
	return s.create(asset)
}

// UpdateAsset merges the sparse change set onto the stored asset
func (s *AssetService) UpdateAsset(id uint, updates map[string]interface{}) (*models.Asset, error) {
	asset, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, ErrAssetNotFound
	}

	updates["updated_at"] = time.Now()
	return s.applyUpdates(id, asset, updates)
}

// DeleteAsset removes the asset and reports whether a row existed
func (s *AssetService) DeleteAsset(id uint) (bool, error) {
	return s.deleteByID(id)
}

// GetAssetsSummary computes total value, row count and the per-condition
// breakdown from the current rows
func (s *AssetService) GetAssetsSummary() (*AssetsSummary, error) {
	var totals struct {
		TotalValue decimal.Decimal
		TotalCount int64
	}
	if err := s.DB.Model(&models.Asset{}).
		Select("COALESCE(SUM(value), 0) AS total_value, COUNT(*) AS total_count").
		Scan(&totals).Error; err != nil {
		return nil, err
	}

	byCondition := make(map[string]int64, len(models.AssetConditions))
	for _, condition := range models.AssetConditions {
		byCondition[condition] = 0
	}

	var grouped []struct {
		Condition string
		Count     int64
	}
	if err := s.DB.Model(&models.Asset{}).
		Select("`condition`, COUNT(*) AS count").
		Group("`condition`").
		Scan(&grouped).Error; err != nil {
		return nil, err
	}
	for _, row := range grouped {
		byCondition[row.Condition] = row.Count
	}

	return &AssetsSummary{
		TotalValue:  totals.TotalValue,
		TotalCount:  totals.TotalCount,
		ByCondition: byCondition,
	}, nil
}
