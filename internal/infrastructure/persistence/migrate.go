package persistence

import (
	"fmt"

	"github.com/eventbook/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every persistence model
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.CustomerEventModel{},
		&models.PaymentModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
