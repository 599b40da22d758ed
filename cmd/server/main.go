// @title           Village Administration Service API
// @version         1.0
// @description     Record keeping for village administration: residents, finances, budgets, events, assets and public services

// @contact.name   API Support
// @contact.email  support@desa.example.id

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /api
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"village-admin-service/internal/app/routes"
	"village-admin-service/internal/domain/models"
	"village-admin-service/internal/infrastructure/config"
	"village-admin-service/internal/infrastructure/database"
	Logger "village-admin-service/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := godotenv.Load(); err != nil {
		// environment variables may be set by the deployment instead
		fmt.Printf("no .env file loaded: %v\n", err)
	}

	cfg := config.GetConfig()

	if err := Logger.SetupLoggerWith(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer Logger.Sync()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database connection pool: %v", err)
	}
	db := pool.GetDB()

	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("failed to drop and recreate tables: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
	}

	r := routes.SetupRouter(db, cfg)

	printSystemInfo(pool)

	port := cfg.ServerPort
	Logger.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("server failed: %v", err)
		os.Exit(1)
	}
}

// autoMigrate adds missing tables and columns, never drops anything
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Resident{},
		&models.FinanceTransaction{},
		&models.Budget{},
		&models.Event{},
		&models.Asset{},
		&models.PublicService{},
	)
}

// dropAndRecreateTables rebuilds the schema from scratch
func dropAndRecreateTables(db *gorm.DB) error {
	tables := []string{
		"residents", "village_finance", "village_budget",
		"village_events", "village_assets", "public_services",
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	for _, table := range tables {
		log.Printf("dropping table: %s", table)
		if _, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			log.Printf("failed to drop table %s: %v", table, err)
		}
	}

	return autoMigrate(db)
}

// printSystemInfo logs pool and runtime details at startup
func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		log.Printf("database pool: open=%d idle=%d inUse=%d", stats.OpenConnections, stats.Idle, stats.InUse)
	}

	log.Printf("cpu cores: %d", runtime.NumCPU())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("memory: Alloc=%v MiB, Sys=%v MiB", m.Alloc/1024/1024, m.Sys/1024/1024)
}
