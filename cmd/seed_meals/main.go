package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"sort"

	"github.com/kioskhub/dashboard/backend/config"
	"github.com/kioskhub/dashboard/backend/internal/database"
	"github.com/kioskhub/dashboard/backend/internal/logger"
	"github.com/kioskhub/dashboard/backend/internal/mealplan"
	"github.com/kioskhub/dashboard/backend/internal/model"
	"github.com/kioskhub/dashboard/backend/internal/service"
	"go.uber.org/zap"
)

// seedFile is the same shape GET /api/v1/households/:household/meals returns.
type seedFile struct {
	Household string         `json:"household"`
	Meals     model.MealPlan `json:"meals"`
}

func main() {
	path := flag.String("file", "meals.json", "JSON meal plan to load")
	household := flag.String("household", "", "household id, overrides the one in the file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if _, err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	raw, err := os.ReadFile(*path)
	if err != nil {
		logger.L().Fatal("failed to read seed file", zap.String("file", *path), zap.Error(err))
	}
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		logger.L().Fatal("failed to parse seed file", zap.String("file", *path), zap.Error(err))
	}
	if *household != "" {
		seed.Household = *household
	}
	if seed.Household == "" {
		seed.Household = cfg.Shopping.DefaultHousehold
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		logger.L().Fatal("failed to run migrations", zap.Error(err))
	}

	plans := service.NewMealPlanService(mealplan.NewDBSource(db))

	dates := make([]string, 0, len(seed.Meals))
	for date := range seed.Meals {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	ctx := context.Background()
	for _, date := range dates {
		if err := plans.ReplaceDay(ctx, seed.Household, date, seed.Meals[date]); err != nil {
			logger.L().Fatal("failed to seed day", zap.String("date", date), zap.Error(err))
		}
		logger.Info("seeded day", zap.String("household", seed.Household), zap.String("date", date))
	}
	logger.Info("meal plan seeded", zap.String("household", seed.Household), zap.Int("days", len(dates)))
}
