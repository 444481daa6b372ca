package utils

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"studyvault/backend/config"
	"studyvault/backend/models"
)

// ErrStoreNotConfigured is returned when the database settings are
// missing; every query path fails deterministically in that case.
var ErrStoreNotConfigured = errors.New("material store is not configured")

// InitDB connects to Postgres and migrates the schema.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBHost == "" || cfg.DBName == "" {
		return nil, ErrStoreNotConfigured
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Material{},
		&models.PendingMaterial{},
		&models.SelectionState{},
		&models.FileOpen{},
	)
}
