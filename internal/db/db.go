package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tekser/repair-tracker/internal/config"
	"github.com/tekser/repair-tracker/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Brand{},
		&models.Service{},
		&models.ServiceRecord{},
		&models.ServiceLog{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Older installs saved statuses with mixed casing.
	db.Exec(`
        UPDATE service_records
        SET status = LOWER(status)
        WHERE status <> LOWER(status)
    `)

	return db
}
