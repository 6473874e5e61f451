package config

import (
	"fmt"
	"strings"

	"github.com/andrewpaige1/questionbank-console/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the durable storage. Postgres URLs use the postgres driver,
// anything else is treated as a sqlite path or DSN.
func Connect(storageURL string) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(storageURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect storage: %w", err)
	}

	if err := db.AutoMigrate(&models.StoredValue{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate storage: %w", err)
	}

	return db, nil
}

func dialector(storageURL string) gorm.Dialector {
	if strings.HasPrefix(storageURL, "postgres://") || strings.HasPrefix(storageURL, "postgresql://") {
		return postgres.Open(storageURL)
	}
	return sqlite.Open(storageURL)
}
