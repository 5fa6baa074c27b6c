package database

import (
	"fmt"

	"github.com/kioskhub/dashboard/backend/internal/logger"
	"github.com/kioskhub/dashboard/backend/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table owned by the service.
func Models() []interface{} {
	return []interface{}{
		&model.StoredShoppingList{},
		&model.PlannedMeal{},
	}
}

// RunMigrations creates or updates the schema.
func RunMigrations(db *gorm.DB) error {
	logger.Named("database").Info("running auto-migration", zap.String("dialect", db.Dialector.Name()))
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
