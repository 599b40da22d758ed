package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/infrastructure/config"
)

// newTestDB opens an isolated in-memory database and migrates the schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Resident{},
		&models.FinanceTransaction{},
		&models.Budget{},
		&models.Event{},
		&models.Asset{},
		&models.PublicService{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{EnvType: "LOCAL"}
}
