package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"village-admin-service/internal/domain/models"
)

func TestResidentCRUD(t *testing.T) {
	svc := NewResidentService(newTestDB(t), testConfig())

	rows, err := svc.GetAllResidents()
	require.NoError(t, err)
	assert.Empty(t, rows)

	resident := &models.Resident{Name: "Budi Santoso", Address: "Jl. Merdeka No. 1", Job: "Petani"}
	require.NoError(t, svc.CreateResident(resident))
	assert.NotZero(t, resident.ID)
	assert.False(t, resident.CreatedAt.IsZero())

	got, err := svc.GetResidentByID(resident.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Budi Santoso", got.Name)
	assert.Equal(t, "Petani", got.Job)

	deleted, err := svc.DeleteResident(resident.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = svc.GetResidentByID(resident.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResidentGetAllInsertionOrder(t *testing.T) {
	svc := NewResidentService(newTestDB(t), testConfig())

	names := []string{"Siti Aminah", "Agus Wijaya", "Dewi Lestari"}
	for _, name := range names {
		require.NoError(t, svc.CreateResident(&models.Resident{Name: name, Address: "Dusun 2", Job: "Guru"}))
	}

	rows, err := svc.GetAllResidents()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, name := range names {
		assert.Equal(t, name, rows[i].Name)
	}
}

func TestResidentPartialUpdate(t *testing.T) {
	svc := NewResidentService(newTestDB(t), testConfig())

	resident := &models.Resident{Name: "Budi Santoso", Address: "Jl. Merdeka No. 1", Job: "Petani"}
	require.NoError(t, svc.CreateResident(resident))
	before := resident.UpdatedAt

	updated, err := svc.UpdateResident(resident.ID, map[string]interface{}{"job": "Pedagang"})
	require.NoError(t, err)
	assert.Equal(t, "Pedagang", updated.Job)
	assert.Equal(t, "Budi Santoso", updated.Name)
	assert.Equal(t, "Jl. Merdeka No. 1", updated.Address)
	assert.True(t, updated.UpdatedAt.After(before), "updated_at did not advance: %s -> %s", before, updated.UpdatedAt)
}

func TestResidentUpdateNotFound(t *testing.T) {
	svc := NewResidentService(newTestDB(t), testConfig())

	_, err := svc.UpdateResident(999, map[string]interface{}{"name": "Nobody"})
	assert.ErrorIs(t, err, ErrResidentNotFound)
}

func TestResidentDeleteIdempotent(t *testing.T) {
	svc := NewResidentService(newTestDB(t), testConfig())

	resident := &models.Resident{Name: "Budi Santoso", Address: "Jl. Merdeka No. 1", Job: "Petani"}
	require.NoError(t, svc.CreateResident(resident))

	deleted, err := svc.DeleteResident(resident.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteResident(resident.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
