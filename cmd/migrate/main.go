package main

import (
	"log"

	"github.com/kioskhub/dashboard/backend/config"
	"github.com/kioskhub/dashboard/backend/internal/database"
	"github.com/kioskhub/dashboard/backend/internal/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if _, err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.RunMigrations(db); err != nil {
		logger.L().Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("migrations applied", zap.String("driver", cfg.Database.Driver), zap.Int("models", len(database.Models())))
}
