package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village-admin-service/internal/domain/models"
)

func newPublicService(name string, active bool) *models.PublicService {
	return &models.PublicService{
		Name:        name,
		Description: "Layanan administrasi desa",
		IsActive:    active,
	}
}

func TestPublicServiceActiveFilter(t *testing.T) {
	svc := NewPublicServiceService(newTestDB(t), testConfig())

	require.NoError(t, svc.CreateService(newPublicService("Surat Keterangan Domisili", true)))
	require.NoError(t, svc.CreateService(newPublicService("Surat Izin Keramaian", false)))
	require.NoError(t, svc.CreateService(newPublicService("Surat Keterangan Usaha", true)))

	rows, err := svc.GetActiveServices()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.True(t, row.IsActive)
	}

	all, err := svc.GetAllServices()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// Toggling twice returns to the original state without disturbing the other
// columns
func TestPublicServiceToggleRoundTrip(t *testing.T) {
	svc := NewPublicServiceService(newTestDB(t), testConfig())

	cost := decimal.NewNullDecimal(decimal.RequireFromString("5000.00"))
	service := newPublicService("Surat Keterangan Domisili", true)
	service.Cost = cost
	require.NoError(t, svc.CreateService(service))

	toggled, err := svc.ToggleServiceStatus(service.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
	assert.Equal(t, "Surat Keterangan Domisili", toggled.Name)
	require.True(t, toggled.Cost.Valid)
	assert.True(t, toggled.Cost.Decimal.Equal(cost.Decimal))

	toggled, err = svc.ToggleServiceStatus(service.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestPublicServiceToggleNotFound(t *testing.T) {
	svc := NewPublicServiceService(newTestDB(t), testConfig())

	_, err := svc.ToggleServiceStatus(404)
	assert.ErrorIs(t, err, ErrPublicServiceNotFound)
}

func TestPublicServiceToggleExcludesFromActive(t *testing.T) {
	svc := NewPublicServiceService(newTestDB(t), testConfig())

	service := newPublicService("Surat Pengantar KTP", true)
	require.NoError(t, svc.CreateService(service))

	_, err := svc.ToggleServiceStatus(service.ID)
	require.NoError(t, err)

	rows, err := svc.GetActiveServices()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPublicServicePartialUpdate(t *testing.T) {
	svc := NewPublicServiceService(newTestDB(t), testConfig())

	service := newPublicService("Surat Keterangan Usaha", true)
	require.NoError(t, svc.CreateService(service))

	contact := "Ibu Sri"
	updated, err := svc.UpdateService(service.ID, map[string]interface{}{
		"contact_person": &contact,
		"cost":           decimal.RequireFromString("2500.00"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ContactPerson)
	assert.Equal(t, "Ibu Sri", *updated.ContactPerson)
	require.True(t, updated.Cost.Valid)
	assert.True(t, updated.Cost.Decimal.Equal(decimal.RequireFromString("2500.00")))
	assert.True(t, updated.IsActive)
}

func TestPublicServiceUpdateNotFound(t *testing.T) {
	svc := NewPublicServiceService(newTestDB(t), testConfig())

	_, err := svc.UpdateService(31, map[string]interface{}{"name": "Nothing"})
	assert.ErrorIs(t, err, ErrPublicServiceNotFound)
}

func TestPublicServiceDelete(t *testing.T) {
	svc := NewPublicServiceService(newTestDB(t), testConfig())

	service := newPublicService("Surat Izin Keramaian", true)
	require.NoError(t, svc.CreateService(service))

	deleted, err := svc.DeleteService(service.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteService(service.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
