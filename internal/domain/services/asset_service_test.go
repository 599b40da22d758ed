package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village-admin-service/internal/domain/models"
)

func newAsset(name, category, value, condition string) *models.Asset {
	return &models.Asset{
		Name:      name,
		Category:  category,
		Value:     decimal.RequireFromString(value),
		Condition: condition,
		Location:  "Kantor Desa",
	}
}

func TestAssetsSummary(t *testing.T) {
	svc := NewAssetService(newTestDB(t), testConfig())

	require.NoError(t, svc.CreateAsset(newAsset("Laptop", "elektronik", "100000.00", models.AssetConditionExcellent)))
	require.NoError(t, svc.CreateAsset(newAsset("Kursi rusak", "mebel", "10000.00", models.AssetConditionPoor)))

	summary, err := svc.GetAssetsSummary()
	require.NoError(t, err)
	assert.True(t, summary.TotalValue.Equal(decimal.RequireFromString("110000.00")),
		"total value: %s", summary.TotalValue)
	assert.Equal(t, int64(2), summary.TotalCount)
	assert.Equal(t, int64(1), summary.ByCondition[models.AssetConditionExcellent])
	assert.Equal(t, int64(0), summary.ByCondition[models.AssetConditionGood])
	assert.Equal(t, int64(0), summary.ByCondition[models.AssetConditionFair])
	assert.Equal(t, int64(1), summary.ByCondition[models.AssetConditionPoor])
}

// Every condition appears in the summary even when no asset has it
func TestAssetsSummaryEmpty(t *testing.T) {
	svc := NewAssetService(newTestDB(t), testConfig())

	summary, err := svc.GetAssetsSummary()
	require.NoError(t, err)
	assert.True(t, summary.TotalValue.IsZero())
	assert.Equal(t, int64(0), summary.TotalCount)
	require.Len(t, summary.ByCondition, 4)
	for _, condition := range models.AssetConditions {
		assert.Equal(t, int64(0), summary.ByCondition[condition])
	}
}

func TestAssetsByCategory(t *testing.T) {
	svc := NewAssetService(newTestDB(t), testConfig())

	require.NoError(t, svc.CreateAsset(newAsset("Traktor", "pertanian", "25000000", models.AssetConditionGood)))
	require.NoError(t, svc.CreateAsset(newAsset("Cangkul", "pertanian", "150000", models.AssetConditionFair)))
	require.NoError(t, svc.CreateAsset(newAsset("Proyektor", "elektronik", "5000000", models.AssetConditionGood)))

	rows, err := svc.GetAssetsByCategory("pertanian")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "pertanian", row.Category)
	}

	rows, err = svc.GetAssetsByCategory("kendaraan")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAssetPurchaseDateRoundTrip(t *testing.T) {
	svc := NewAssetService(newTestDB(t), testConfig())

	purchaseDate := "2023-11-30"
	asset := newAsset("Mesin potong rumput", "pertanian", "3500000", models.AssetConditionGood)
	asset.PurchaseDate = &purchaseDate
	require.NoError(t, svc.CreateAsset(asset))

	got, err := svc.GetAssetByID(asset.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.PurchaseDate)
	assert.Equal(t, "2023-11-30", *got.PurchaseDate)
}

func TestAssetPartialUpdate(t *testing.T) {
	svc := NewAssetService(newTestDB(t), testConfig())

	asset := newAsset("Genset", "elektronik", "7500000", models.AssetConditionGood)
	require.NoError(t, svc.CreateAsset(asset))

	updated, err := svc.UpdateAsset(asset.ID, map[string]interface{}{
		"condition": models.AssetConditionPoor,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AssetConditionPoor, updated.Condition)
	assert.Equal(t, "Genset", updated.Name)
	assert.True(t, updated.Value.Equal(decimal.RequireFromString("7500000")))
}

func TestAssetUpdateNotFound(t *testing.T) {
	svc := NewAssetService(newTestDB(t), testConfig())

	_, err := svc.UpdateAsset(55, map[string]interface{}{"name": "Nothing"})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestAssetDelete(t *testing.T) {
	svc := NewAssetService(newTestDB(t), testConfig())

	asset := newAsset("Tenda", "perlengkapan", "2000000", models.AssetConditionFair)
	require.NoError(t, svc.CreateAsset(asset))

	deleted, err := svc.DeleteAsset(asset.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteAsset(asset.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	summary, err := svc.GetAssetsSummary()
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalCount)
}
