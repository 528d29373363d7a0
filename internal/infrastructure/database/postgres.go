package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Cheskazzzz/portal-master/internal/infrastructure/repositories"
)

// Open creates a new database connection with production-ready settings.
// TranslateError maps unique-constraint violations to gorm.ErrDuplicatedKey,
// which the repositories rely on for conflict detection.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates all portal tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBRole{},
		&repositories.DBUser{},
		&repositories.DBSession{},
		&repositories.DBAuditLog{},
		&repositories.DBAppointment{},
	); err != nil {
		return fmt.Errorf("failed to migrate portal tables: %w", err)
	}
	return nil
}
